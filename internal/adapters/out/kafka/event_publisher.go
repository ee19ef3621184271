// Package kafka publishes domain events as JSON messages to one topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"swiftgo/internal/core/domain/events"

	"github.com/segmentio/kafka-go"
)

// Writer is the part of *kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope is the message value.
type Envelope struct {
	Name       string       `json:"name"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    events.Event `json:"payload"`
}

type EventPublisher struct {
	writer Writer
	logger *slog.Logger
}

func NewEventPublisher(brokers []string, topic string, logger *slog.Logger) *EventPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return NewEventPublisherWithWriter(writer, logger)
}

func NewEventPublisherWithWriter(writer Writer, logger *slog.Logger) *EventPublisher {
	return &EventPublisher{
		writer: writer,
		logger: logger.With("component", "kafka_event_publisher"),
	}
}

// Publish writes all events in one batch. Messages are keyed so that events
// of one order land on one partition.
func (p *EventPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(evts))
	for _, e := range evts {
		value, err := json.Marshal(Envelope{Name: e.Name(), OccurredAt: e.OccurredAt(), Payload: e})
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Name(), err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.Key()),
			Value: value,
			Time:  e.OccurredAt(),
			Headers: []kafka.Header{
				{Key: "event-name", Value: []byte(e.Name())},
				{Key: "content-type", Value: []byte("application/json")},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}
	p.logger.DebugContext(ctx, "events published", "count", len(msgs))
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}
