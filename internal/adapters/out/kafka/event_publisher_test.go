package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	kafka_adapter "swiftgo/internal/adapters/out/kafka"
	"swiftgo/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEventPublisher_Publish(t *testing.T) {
	at := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	writer := &fakeWriter{}
	publisher := kafka_adapter.NewEventPublisherWithWriter(writer, discardLogger())

	err := publisher.Publish(t.Context(),
		events.OrderStatusChanged{OrderNo: "SWG-1234", From: "Pending", To: "Proses", ChangedAt: at},
		events.OrderDeleted{OrderNo: "SWG-1234", DeletedAt: at},
	)

	require.NoError(t, err)
	require.Len(t, writer.msgs, 2)

	msg := writer.msgs[0]
	assert.Equal(t, "SWG-1234", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Contains(t, msg.Headers, kafka.Header{Key: "event-name", Value: []byte(events.NameOrderStatusChanged)})

	var decoded struct {
		Name    string                    `json:"name"`
		Payload events.OrderStatusChanged `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, events.NameOrderStatusChanged, decoded.Name)
	assert.Equal(t, "Proses", decoded.Payload.To)

	assert.Equal(t, events.NameOrderDeleted, string(writer.msgs[1].Headers[0].Value))
}

func TestEventPublisher_NothingToPublish(t *testing.T) {
	writer := &fakeWriter{err: errors.New("must not be called")}
	publisher := kafka_adapter.NewEventPublisherWithWriter(writer, discardLogger())

	require.NoError(t, publisher.Publish(t.Context()))
}

func TestEventPublisher_WriteFails(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := kafka_adapter.NewEventPublisherWithWriter(writer, discardLogger())

	err := publisher.Publish(t.Context(), events.OrderDeleted{OrderNo: "SWG-1", DeletedAt: time.Now()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broker unavailable")

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
