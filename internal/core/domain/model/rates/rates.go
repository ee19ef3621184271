// Package rates holds the tariff configuration used by the pricing engine.
package rates

import (
	"errors"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
)

// Surcharges applied when sender and receiver are in different places.
const (
	InterProvinceFee kernel.Money = 15000
	InterCityFee     kernel.Money = 5000
)

// Table is the current tariff. It is replaced as a whole, never patched.
type Table struct {
	BaseRate               kernel.Money
	RatePerKg              kernel.Money
	ExpressFee             kernel.Money
	SameDayFee             kernel.Money
	LoyaltyDiscountPercent int
}

// Default is the tariff used before any rates have been stored.
func Default() Table {
	return Table{
		BaseRate:               10000,
		RatePerKg:              5000,
		ExpressFee:             25000,
		SameDayFee:             50000,
		LoyaltyDiscountPercent: 10,
	}
}

// Validate requires amounts between 0 and kernel.MaxMoney and a discount
// between 0 and 100 percent.
func (t Table) Validate() error {
	return errors.Join(
		amount("base rate", t.BaseRate),
		amount("rate per kg", t.RatePerKg),
		amount("express fee", t.ExpressFee),
		amount("same day fee", t.SameDayFee),
		percent("loyalty discount percent", t.LoyaltyDiscountPercent),
	)
}

// ClampedDiscountPercent bounds the stored percent to [0, 100].
func (t Table) ClampedDiscountPercent() int {
	return min(max(t.LoyaltyDiscountPercent, 0), 100)
}

func amount(name string, m kernel.Money) error {
	if m < 0 || m > kernel.MaxMoney {
		return errs.NewValueIsOutOfRangeError(name, int64(m), 0, int64(kernel.MaxMoney))
	}
	return nil
}

func percent(name string, p int) error {
	if p < 0 || p > 100 {
		return errs.NewValueIsOutOfRangeError(name, p, 0, 100)
	}
	return nil
}
