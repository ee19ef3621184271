package kernel

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is an amount of Indonesian rupiah. Rupiah has no minor unit in
// practice, so every amount the engine produces is a whole number.
type Money int64

// MaxMoney is the largest amount any fee or rate may reach. A handful of them
// summed stays far below the int64 limit.
const MaxMoney Money = 1_000_000_000_000_000

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// String formats the amount the way receipts and the dashboard show it,
// e.g. "Rp 50.000" or "-Rp 5.000".
func (m Money) String() string {
	if m < 0 {
		return "-Rp " + rupiahPrinter.Sprintf("%d", -int64(m))
	}
	return "Rp " + rupiahPrinter.Sprintf("%d", int64(m))
}

// Int64 returns the raw rupiah count.
func (m Money) Int64() int64 {
	return int64(m)
}

// Decimal converts the amount for fractional arithmetic.
func (m Money) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(m))
}

// MoneyFromDecimal truncates d toward zero to whole rupiah, saturating at
// -MaxMoney and MaxMoney.
func MoneyFromDecimal(d decimal.Decimal) Money {
	limit := MaxMoney.Decimal()
	switch {
	case d.GreaterThan(limit):
		return MaxMoney
	case d.LessThan(limit.Neg()):
		return -MaxMoney
	}
	return Money(d.Truncate(0).IntPart())
}

// Clamp bounds m to [0, MaxMoney].
func (m Money) Clamp() Money {
	return min(max(m, 0), MaxMoney)
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m > 0
}
