package queries

import (
	"context"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/services"
)

// QuoteQueryHandler runs the pricing engine against the stored rate table and
// order history, the same inputs CreateOrder uses.
//
// Example:
//
//	handler := NewQuoteQueryHandler(readers)
//	breakdown, err := handler.Handle(ctx, NewQuoteQuery(req))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(breakdown.Total)
type QuoteQueryHandler struct {
	readers    QuoteReaderFactory
	calculator services.PriceCalculator
}

func NewQuoteQueryHandler(readers QuoteReaderFactory) QuoteQueryHandler {
	return QuoteQueryHandler{
		readers:    readers,
		calculator: services.NewPriceCalculator(),
	}
}

func (h QuoteQueryHandler) Handle(ctx context.Context, query QuoteQuery) (order.CostBreakdown, error) {
	if err := query.Validate(); err != nil {
		return order.CostBreakdown{}, err
	}

	reader := h.readers.Create()
	table, err := reader.RateRepository().Get(ctx)
	if err != nil {
		return order.CostBreakdown{}, err
	}

	history, err := reader.OrderRepository().GetAll(ctx)
	if err != nil {
		return order.CostBreakdown{}, err
	}

	return h.calculator.Quote(query.Request(), table, history), nil
}
