package queries

import (
	"context"
	"log/slog"
	"strings"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/errs"
)

// TrackOrderQueryHandler finds an order by number or receipt alias, ignoring
// case. Anything that does not resolve to a stored order, malformed numbers
// included, is errs.ObjectNotFoundError. A successful lookup is handed to
// the recorder; a recorder failure is logged and does not fail the lookup.
type TrackOrderQueryHandler struct {
	readers  OrderReaderFactory
	recorder TrackingRecorder
}

func NewTrackOrderQueryHandler(readers OrderReaderFactory, recorder TrackingRecorder) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{
		readers:  readers,
		recorder: recorder,
	}
}

func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	number, err := order.ParseNumber(query.Number())
	if err != nil {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("tracking number", query.Number(), err)
	}

	o, err := h.readers.Create().OrderRepository().Get(ctx, number)
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	if h.recorder != nil {
		if err = h.recorder.RecordTracking(ctx, query.Number()); err != nil {
			slog.WarnContext(ctx, "failed to record tracking lookup", "number", query.Number(), "error", err)
		}
	}

	route := RouteOutCity
	if strings.EqualFold(strings.TrimSpace(o.Sender().City), strings.TrimSpace(o.Receiver().City)) {
		route = RouteInCity
	}

	return TrackOrderQueryResponse{
		Order: NewOrderView(o),
		Step:  o.Status().TrackingStep(),
		Label: o.Status().TrackingLabel(),
		Route: route,
	}, nil
}
