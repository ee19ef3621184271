package ports

import (
	"context"

	"swiftgo/internal/core/domain/events"
)

// EventPublisher delivers domain events after the transaction that produced
// them has been committed.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event) error
}
