package queries

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/pkg/guard"
)

var ErrGetRatesQueryIsNotConstructed = errors.New(
	"GetRatesQuery must be created via NewGetRatesQuery constructor",
)

type GetRatesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetRatesQuery() GetRatesQuery {
	return GetRatesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetRatesQuery) Validate() error {
	return q.guard.Validate(ErrGetRatesQueryIsNotConstructed)
}

// GetRatesQueryHandler returns the stored rate table, or the configured
// defaults when none was saved.
type GetRatesQueryHandler struct {
	readers RateReaderFactory
}

func NewGetRatesQueryHandler(readers RateReaderFactory) GetRatesQueryHandler {
	return GetRatesQueryHandler{readers: readers}
}

func (h GetRatesQueryHandler) Handle(ctx context.Context, query GetRatesQuery) (rates.Table, error) {
	if err := query.Validate(); err != nil {
		return rates.Table{}, err
	}
	return h.readers.Create().RateRepository().Get(ctx)
}
