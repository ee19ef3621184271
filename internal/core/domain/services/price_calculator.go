package services

import (
	"strings"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/rates"

	"github.com/shopspring/decimal"
)

// LoyaltyCycle is the order count at which a returning sender gets the
// loyalty discount: the 5th, 10th, 15th order and so on.
const LoyaltyCycle = 5

var hundred = decimal.NewFromInt(100)

// PriceCalculator is the pricing engine. It is deterministic and never fails:
// malformed measures contribute zero rather than rejecting the quote.
//
// Pricing rules:
//   - Base is the table's base rate
//   - WeightFee is weight in kg times the per-kg rate, truncated to whole rupiah
//   - ServiceFee is zero for Reguler, the express fee or the same day fee otherwise
//   - LocationFee applies only when both cities are filled in; it is the
//     inter-province fee when provinces differ, else the inter-city fee when
//     cities differ
//   - Every LoyaltyCycle-th order of a sender gets the table's loyalty percent
//     off the subtotal, truncated
//   - Rates and fees are bounded to [0, kernel.MaxMoney], so Total is never
//     negative whatever the weight
//
// Example usage:
//
//	calc := services.NewPriceCalculator()
//	breakdown := calc.Quote(req, rates.Default(), history)
//	fmt.Println(breakdown.Total)
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// Quote prices req against table. prior is the full order history and is
// used only to count earlier orders of the same sender.
func (PriceCalculator) Quote(req order.ShipmentRequest, table rates.Table, prior []*order.Order) order.CostBreakdown {
	b := order.CostBreakdown{
		Base:        table.BaseRate.Clamp(),
		WeightFee:   weightFee(req.Item, table),
		ServiceFee:  serviceFee(req.Service, table),
		LocationFee: locationFee(req.Sender, req.Receiver),
	}

	if isLoyaltyOrder(req.Sender.Name, prior) {
		b.DiscountPercent = table.ClampedDiscountPercent()
		b.DiscountAmount = kernel.MoneyFromDecimal(
			b.Subtotal().Decimal().Mul(decimal.NewFromInt(int64(b.DiscountPercent))).Div(hundred),
		)
	}

	b.Total = b.Subtotal() - b.DiscountAmount
	return b
}

// CountSenderOrders returns how many orders in prior were sent by name.
func CountSenderOrders(name string, prior []*order.Order) int {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0
	}
	count := 0
	for _, o := range prior {
		if o != nil && o.IsFromSender(name) {
			count++
		}
	}
	return count
}

func weightFee(item order.Item, table rates.Table) kernel.Money {
	return kernel.MoneyFromDecimal(item.WeightKg().Mul(table.RatePerKg.Clamp().Decimal()))
}

func serviceFee(service order.Service, table rates.Table) kernel.Money {
	//nolint:exhaustive // Reguler and unknown tiers carry no fee
	switch service {
	case order.Express:
		return table.ExpressFee.Clamp()
	case order.SameDay:
		return table.SameDayFee.Clamp()
	default:
		return 0
	}
}

func locationFee(sender, receiver order.Contact) kernel.Money {
	from, to := sender.Region(), receiver.Region()
	if !from.HasCity() || !to.HasCity() {
		return 0
	}

	//nolint:exhaustive // same city carries no fee
	switch from.Distance(to) {
	case kernel.OtherProvince:
		return rates.InterProvinceFee
	case kernel.SameProvince:
		return rates.InterCityFee
	default:
		return 0
	}
}

func isLoyaltyOrder(senderName string, prior []*order.Order) bool {
	if strings.TrimSpace(senderName) == "" {
		return false
	}
	return (CountSenderOrders(senderName, prior)+1)%LoyaltyCycle == 0
}
