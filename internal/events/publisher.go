package events

import (
	"context"

	"github.com/feral-file/ff-drop-engine/internal/domain"
)

// Publisher publishes drop events after a state change commits.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a drop event; the event id is assigned when empty
	PublishEvent(ctx context.Context, event *domain.DropEvent) error
	// Close releases the underlying connection
	Close()
}

// NoopPublisher discards events. Used when no event stream is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(ctx context.Context, event *domain.DropEvent) error {
	return nil
}

func (NoopPublisher) Close() {}
