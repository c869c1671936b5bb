package events

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-drop-engine/internal/adapter"
	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/logger"
)

// Config holds the configuration for the NATS JetStream publisher
type Config struct {
	URL            string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type jetStreamPublisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
	json          adapter.JSON
	clock         adapter.Clock
}

// NewJetStreamPublisher creates a NATS JetStream publisher for drop events
func NewJetStreamPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON, clock adapter.Clock) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = "drops"
	}

	return &jetStreamPublisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
		json:          jsonAdapter,
		clock:         clock,
	}, nil
}

// PublishEvent publishes a drop event to NATS JetStream
func (p *jetStreamPublisher) PublishEvent(ctx context.Context, event *domain.DropEvent) error {
	if event.EventID == "" {
		event.EventID = ulid.MustNew(ulid.Timestamp(p.clock.Now()), rand.Reader).String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.clock.Now().UTC()
	}

	logger.Debug("Publishing drop event", zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := fmt.Sprintf("%s.%s.%s", p.subjectPrefix, event.Drop, event.Type)

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close closes the NATS connection
func (p *jetStreamPublisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
