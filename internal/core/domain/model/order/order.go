package order

import (
	"errors"
	"strings"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is a single shipment with a frozen price and a mutable status.
//
// Invariants:
//   - number is unique and never changes
//   - sender, receiver and item are copies taken at creation
//   - cost and therefore Amount never change
//   - status only moves along the transition table
type Order struct {
	number    Number
	sender    Contact
	receiver  Contact
	item      Item
	service   Service
	payment   Payment
	status    Status
	cost      CostBreakdown
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from a validated request and the
// breakdown the pricing engine produced for it.
//
// Example:
//
//	breakdown := pricing.Quote(req, rates, history)
//	o, err := order.NewOrder(order.GenerateNumber(order.ShortNumberDigits), req, breakdown, time.Now())
func NewOrder(number Number, req ShipmentRequest, cost CostBreakdown, createdAt time.Time) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return RestoreOrder(number, req, Pending, cost, createdAt)
}

// RestoreOrder rebuilds an order from storage. Required form fields are not
// re-checked so that records written by older clients still load.
func RestoreOrder(number Number, req ShipmentRequest, status Status, cost CostBreakdown, createdAt time.Time) (*Order, error) {
	o := &Order{
		sender:   req.Sender,
		receiver: req.Receiver,
		item:     req.Item,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setService(req.Service),
		o.setPayment(req.Payment),
		o.setStatus(status),
		o.setCost(cost),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by number.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) Sender() Contact {
	return o.sender
}

func (o *Order) Receiver() Contact {
	return o.receiver
}

func (o *Order) Item() Item {
	return o.item
}

func (o *Order) Service() Service {
	return o.service
}

func (o *Order) Payment() Payment {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Cost() CostBreakdown {
	return o.cost
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Amount is the frozen total charged for the order.
func (o *Order) Amount() kernel.Money {
	return o.cost.Total
}

// Volume is derived from the item dimensions.
func (o *Order) Volume() decimal.Decimal {
	return o.item.Volume()
}

func (o *Order) Destination() kernel.Region {
	return o.receiver.Region()
}

// Request returns the shipment request the order was created from.
func (o *Order) Request() ShipmentRequest {
	return ShipmentRequest{
		Sender:   o.sender,
		Receiver: o.receiver,
		Item:     o.item,
		Service:  o.service,
		Payment:  o.payment,
	}
}

// IsFromSender matches the sender name case-insensitively, ignoring
// surrounding whitespace on both sides.
func (o *Order) IsFromSender(name string) bool {
	return strings.EqualFold(strings.TrimSpace(o.sender.Name), strings.TrimSpace(name))
}

// ChangeStatus moves the order to target if the transition table allows it.
// On failure the status is left unchanged.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// RequiresRefund reports whether the order has been cancelled after being
// paid from the wallet.
func (o *Order) RequiresRefund() bool {
	return o.status == Dibatalkan && o.payment.IsPrepaid()
}

// ValidateDelete allows deleting delivered orders only.
func (o *Order) ValidateDelete() error {
	return o.status.ValidateDelete()
}

func (o *Order) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setService(service Service) error {
	if err := service.Validate(); err != nil {
		return err
	}
	o.service = service
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCost(cost CostBreakdown) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.cost = cost
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = at
	return nil
}
