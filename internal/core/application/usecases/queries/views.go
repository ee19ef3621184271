package queries

import (
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderView is the read model of one order.
type OrderView struct {
	OrderNo   string
	ReceiptNo string
	Sender    order.Contact
	Receiver  order.Contact
	Item      order.Item
	Volume    decimal.Decimal
	Service   string
	Payment   string
	Status    string
	Amount    kernel.Money
	Cost      order.CostBreakdown
	CreatedAt time.Time
}

// NewOrderView builds the read model of an order returned by a command.
func NewOrderView(o *order.Order) OrderView {
	return OrderView{
		OrderNo:   o.Number().String(),
		ReceiptNo: o.Number().ReceiptAlias(),
		Sender:    o.Sender(),
		Receiver:  o.Receiver(),
		Item:      o.Item(),
		Volume:    o.Volume(),
		Service:   o.Service().String(),
		Payment:   o.Payment().String(),
		Status:    o.Status().String(),
		Amount:    o.Amount(),
		Cost:      o.Cost(),
		CreatedAt: o.CreatedAt(),
	}
}

func newOrderViews(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, NewOrderView(o))
	}
	return views
}

// StatusCounts is the number of orders in each status.
type StatusCounts struct {
	Pending    int
	Proses     int
	Selesai    int
	Dibatalkan int
}

func (c *StatusCounts) add(s order.Status) {
	switch s {
	case order.Pending:
		c.Pending++
	case order.Proses:
		c.Proses++
	case order.Selesai:
		c.Selesai++
	case order.Dibatalkan:
		c.Dibatalkan++
	case order.Unknown:
	}
}
