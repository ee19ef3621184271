package order

import (
	"fmt"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
)

// CostBreakdown is the priced result for one shipment request.
// Total is always Base + WeightFee + ServiceFee + LocationFee - DiscountAmount.
type CostBreakdown struct {
	Base            kernel.Money
	WeightFee       kernel.Money
	ServiceFee      kernel.Money
	LocationFee     kernel.Money
	DiscountPercent int
	DiscountAmount  kernel.Money
	Total           kernel.Money
}

// Subtotal is the sum of all fees before the loyalty discount.
func (c CostBreakdown) Subtotal() kernel.Money {
	return c.Base + c.WeightFee + c.ServiceFee + c.LocationFee
}

// HasDiscount reports whether the loyalty discount was applied.
func (c CostBreakdown) HasDiscount() bool {
	return c.DiscountPercent > 0
}

// Validate checks the arithmetic invariants of a breakdown.
func (c CostBreakdown) Validate() error {
	fees := []struct {
		name  string
		value kernel.Money
	}{
		{"base", c.Base},
		{"weight fee", c.WeightFee},
		{"service fee", c.ServiceFee},
		{"location fee", c.LocationFee},
		{"discount amount", c.DiscountAmount},
	}
	for _, fee := range fees {
		if fee.value < 0 {
			return errs.NewValueIsOutOfRangeError(fee.name, int64(fee.value), 0, "unbounded")
		}
	}
	if c.DiscountPercent < 0 || c.DiscountPercent > 100 {
		return errs.NewValueIsOutOfRangeError("discount percent", c.DiscountPercent, 0, 100)
	}
	if want := c.Subtotal() - c.DiscountAmount; c.Total != want {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%d does not equal %d", c.Total, want))
	}
	if c.Total < 0 {
		return errs.NewValueIsOutOfRangeError("total", int64(c.Total), 0, "unbounded")
	}
	return nil
}
