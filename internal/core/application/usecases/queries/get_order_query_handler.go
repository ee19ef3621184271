package queries

import (
	"context"
)

// GetOrderQueryHandler returns one order or errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	readers OrderReaderFactory
}

func NewGetOrderQueryHandler(readers OrderReaderFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{readers: readers}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.readers.Create().OrderRepository().Get(ctx, query.Number())
	if err != nil {
		return OrderView{}, err
	}

	return NewOrderView(o), nil
}
