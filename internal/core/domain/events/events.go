// Package events defines the domain events published after a state change
// has been committed.
package events

import (
	"time"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/wallet"
)

const (
	NameOrderCreated       = "order.created"
	NameOrderStatusChanged = "order.status_changed"
	NameOrderDeleted       = "order.deleted"
	NameWalletChanged      = "wallet.changed"
	NameRatesUpdated       = "rates.updated"
)

const walletKey = "wallet"

// Event is a fact about a committed change. Key groups events that must be
// delivered in order, e.g. all events of one order number.
type Event interface {
	Name() string
	Key() string
	OccurredAt() time.Time
}

type OrderCreated struct {
	OrderNo   string    `json:"order_no"`
	Sender    string    `json:"sender"`
	Receiver  string    `json:"receiver"`
	Service   string    `json:"service"`
	Payment   string    `json:"payment"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func NewOrderCreated(o *order.Order) OrderCreated {
	return OrderCreated{
		OrderNo:   o.Number().String(),
		Sender:    o.Sender().Name,
		Receiver:  o.Receiver().Name,
		Service:   o.Service().String(),
		Payment:   o.Payment().String(),
		Amount:    o.Amount().Int64(),
		CreatedAt: o.CreatedAt(),
	}
}

func (e OrderCreated) Name() string          { return NameOrderCreated }
func (e OrderCreated) Key() string           { return e.OrderNo }
func (e OrderCreated) OccurredAt() time.Time { return e.CreatedAt }

type OrderStatusChanged struct {
	OrderNo   string    `json:"order_no"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewOrderStatusChanged(no order.Number, from, to order.Status, at time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		OrderNo:   no.String(),
		From:      from.String(),
		To:        to.String(),
		ChangedAt: at,
	}
}

func (e OrderStatusChanged) Name() string          { return NameOrderStatusChanged }
func (e OrderStatusChanged) Key() string           { return e.OrderNo }
func (e OrderStatusChanged) OccurredAt() time.Time { return e.ChangedAt }

type OrderDeleted struct {
	OrderNo   string    `json:"order_no"`
	DeletedAt time.Time `json:"deleted_at"`
}

func (e OrderDeleted) Name() string          { return NameOrderDeleted }
func (e OrderDeleted) Key() string           { return e.OrderNo }
func (e OrderDeleted) OccurredAt() time.Time { return e.DeletedAt }

type WalletChanged struct {
	EntryID     string    `json:"entry_id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Balance     int64     `json:"balance"`
	Description string    `json:"description"`
	ChangedAt   time.Time `json:"changed_at"`
}

func NewWalletChanged(entry wallet.Entry, w *wallet.Wallet) WalletChanged {
	return WalletChanged{
		EntryID:     entry.ID.String(),
		Type:        string(entry.Type),
		Amount:      entry.Amount.Int64(),
		Balance:     w.Balance().Int64(),
		Description: entry.Description,
		ChangedAt:   entry.Timestamp,
	}
}

func (e WalletChanged) Name() string          { return NameWalletChanged }
func (e WalletChanged) Key() string           { return walletKey }
func (e WalletChanged) OccurredAt() time.Time { return e.ChangedAt }

type RatesUpdated struct {
	BaseRate               int64     `json:"base_rate"`
	RatePerKg              int64     `json:"rate_per_kg"`
	ExpressFee             int64     `json:"express_fee"`
	SameDayFee             int64     `json:"same_day_fee"`
	LoyaltyDiscountPercent int       `json:"loyalty_discount_percent"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func NewRatesUpdated(t rates.Table, at time.Time) RatesUpdated {
	return RatesUpdated{
		BaseRate:               t.BaseRate.Int64(),
		RatePerKg:              t.RatePerKg.Int64(),
		ExpressFee:             t.ExpressFee.Int64(),
		SameDayFee:             t.SameDayFee.Int64(),
		LoyaltyDiscountPercent: t.LoyaltyDiscountPercent,
		UpdatedAt:              at,
	}
}

func (e RatesUpdated) Name() string          { return NameRatesUpdated }
func (e RatesUpdated) Key() string           { return "rates" }
func (e RatesUpdated) OccurredAt() time.Time { return e.UpdatedAt }
