package queries

import (
	"context"
	"strings"

	"swiftgo/internal/core/domain/model/order"
)

type ListOrdersQueryHandler struct {
	readers OrderReaderFactory
}

func NewListOrdersQueryHandler(readers OrderReaderFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{readers: readers}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.readers.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return newOrderViews(filterOrders(all, query.Search())), nil
}

// filterOrders keeps the orders matching the trimmed search. A blank search
// keeps them all.
func filterOrders(all []*order.Order, search string) []*order.Order {
	search = strings.TrimSpace(search)
	if search == "" {
		return all
	}

	needle := strings.ToLower(search)
	matched := make([]*order.Order, 0, len(all))
	for _, o := range all {
		if strings.Contains(strings.ToLower(o.Number().String()), needle) ||
			strings.Contains(strings.ToLower(o.Receiver().Name), needle) {
			matched = append(matched, o)
		}
	}
	return matched
}
