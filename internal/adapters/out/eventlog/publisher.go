// Package eventlog is the event publisher used when no broker is configured.
package eventlog

import (
	"context"
	"log/slog"

	"swiftgo/internal/core/domain/events"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "event_log")}
}

// Publish writes one info record per event. It never fails.
func (p *Publisher) Publish(ctx context.Context, evts ...events.Event) error {
	for _, e := range evts {
		p.logger.InfoContext(ctx, "domain event",
			"name", e.Name(),
			"key", e.Key(),
			"occurred_at", e.OccurredAt(),
			"event", e,
		)
	}
	return nil
}
