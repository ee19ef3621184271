package commands

import (
	"context"
	"log/slog"

	"swiftgo/internal/core/domain/events"
	"swiftgo/internal/core/ports"
)

// publishCommitted hands events of an already committed change to the
// publisher. A delivery failure cannot undo the change, so it is only logged.
func publishCommitted(ctx context.Context, publisher ports.EventPublisher, evts ...events.Event) {
	if publisher == nil || len(evts) == 0 {
		return
	}
	if err := publisher.Publish(ctx, evts...); err != nil {
		slog.WarnContext(ctx, "failed to publish events", "count", len(evts), "error", err)
	}
}
