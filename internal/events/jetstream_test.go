package events_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-drop-engine/internal/domain"
	"github.com/feral-file/ff-drop-engine/internal/events"
	"github.com/feral-file/ff-drop-engine/internal/logger"
	"github.com/feral-file/ff-drop-engine/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testPublisherMocks contains all the mocks needed for testing the publisher
type testPublisherMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mocks.MockNatsJetStream
	conn      *mocks.MockNatsConn
	js        *mocks.MockJetStream
	json      *mocks.MockJSON
	clock     *mocks.MockClock
	publisher events.Publisher
}

func setupTestPublisher(t *testing.T, cfg events.Config) *testPublisherMocks {
	ctrl := gomock.NewController(t)

	tm := &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
		json:   mocks.NewMockJSON(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}

	tm.natsJS.
		EXPECT().
		Connect(cfg.URL, gomock.Any()).
		Return(tm.conn, tm.js, nil)

	publisher, err := events.NewJetStreamPublisher(cfg, tm.natsJS, tm.json, tm.clock)
	require.NoError(t, err)
	tm.publisher = publisher

	return tm
}

func TestNewJetStreamPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.
		EXPECT().
		Connect("nats://localhost:4222", gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	publisher, err := events.NewJetStreamPublisher(events.Config{
		URL: "nats://localhost:4222",
	}, natsJS, mocks.NewMockJSON(ctrl), mocks.NewMockClock(ctrl))
	assert.Error(t, err)
	assert.Nil(t, publisher)
}

func TestPublishEvent(t *testing.T) {
	tm := setupTestPublisher(t, events.Config{
		URL:           "nats://localhost:4222",
		SubjectPrefix: "drops",
	})
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).MinTimes(1)

	event := &domain.DropEvent{
		Type:     domain.EventTypeSale,
		Drop:     "genesis-drop",
		Buyer:    "0x1111111111111111111111111111111111111111",
		Quantity: 2,
	}

	payload := []byte(`{"type":"sale"}`)
	tm.json.
		EXPECT().
		Marshal(gomock.Any()).
		DoAndReturn(func(v interface{}) ([]byte, error) {
			e, ok := v.(*domain.DropEvent)
			require.True(t, ok)
			assert.NotEmpty(t, e.EventID)
			assert.Equal(t, now, e.Timestamp)
			return payload, nil
		})
	tm.js.
		EXPECT().
		Publish(gomock.Any(), "drops.genesis-drop.sale", payload).
		Return(&jetstream.PubAck{}, nil)

	err := tm.publisher.PublishEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestPublishEvent_KeepsAssignedIdentity(t *testing.T) {
	tm := setupTestPublisher(t, events.Config{
		URL:           "nats://localhost:4222",
		SubjectPrefix: "drops",
	})
	defer tm.ctrl.Finish()

	ts := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
	event := &domain.DropEvent{
		EventID:   "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		Type:      domain.EventTypeFinalized,
		Drop:      "genesis-drop",
		Timestamp: ts,
	}

	// A pre-assigned id and timestamp must survive publication untouched
	tm.json.
		EXPECT().
		Marshal(gomock.Any()).
		DoAndReturn(func(v interface{}) ([]byte, error) {
			e := v.(*domain.DropEvent)
			assert.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", e.EventID)
			assert.Equal(t, ts, e.Timestamp)
			return []byte(`{}`), nil
		})
	tm.js.
		EXPECT().
		Publish(gomock.Any(), "drops.genesis-drop.finalized", gomock.Any()).
		Return(&jetstream.PubAck{}, nil)

	err := tm.publisher.PublishEvent(context.Background(), event)
	assert.NoError(t, err)
}

func TestPublishEvent_PublishError(t *testing.T) {
	tm := setupTestPublisher(t, events.Config{
		URL:           "nats://localhost:4222",
		SubjectPrefix: "drops",
	})
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).MinTimes(1)

	tm.json.EXPECT().Marshal(gomock.Any()).Return([]byte(`{}`), nil)
	tm.js.
		EXPECT().
		Publish(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("stream unavailable"))

	err := tm.publisher.PublishEvent(context.Background(), &domain.DropEvent{
		Type: domain.EventTypeSale,
		Drop: "genesis-drop",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestClose(t *testing.T) {
	tm := setupTestPublisher(t, events.Config{
		URL: "nats://localhost:4222",
	})
	defer tm.ctrl.Finish()

	tm.conn.EXPECT().Close()
	tm.publisher.Close()
}
