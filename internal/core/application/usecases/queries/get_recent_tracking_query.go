package queries

import (
	"context"
	"errors"

	"swiftgo/internal/pkg/guard"
)

var ErrGetRecentTrackingQueryIsNotConstructed = errors.New(
	"GetRecentTrackingQuery must be created via NewGetRecentTrackingQuery constructor",
)

type GetRecentTrackingQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRecentTrackingQuery() GetRecentTrackingQuery {
	return GetRecentTrackingQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRecentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentTrackingQueryIsNotConstructed)
}

type GetRecentTrackingQueryHandler struct {
	readers TrackingReaderFactory
}

func NewGetRecentTrackingQueryHandler(readers TrackingReaderFactory) GetRecentTrackingQueryHandler {
	return GetRecentTrackingQueryHandler{readers: readers}
}

// Handle returns the recently tracked numbers, newest first.
func (h GetRecentTrackingQueryHandler) Handle(ctx context.Context, query GetRecentTrackingQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	recent, err := h.readers.Create().TrackingRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	return recent.Numbers(), nil
}
