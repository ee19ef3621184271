package queries

import (
	"errors"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/guard"
)

var ErrQuoteQueryIsNotConstructed = errors.New(
	"QuoteQuery must be created via NewQuoteQuery constructor",
)

// QuoteQuery prices a shipment request without placing an order. The request
// may be incomplete: missing or malformed measures simply price as zero.
type QuoteQuery struct {
	request order.ShipmentRequest

	guard guard.ConstructorGuard
}

func NewQuoteQuery(req order.ShipmentRequest) QuoteQuery {
	return QuoteQuery{
		request: req,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

func (q QuoteQuery) Request() order.ShipmentRequest {
	return q.request
}
