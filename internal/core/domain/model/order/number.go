package order

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"swiftgo/internal/pkg/errs"
)

const (
	numberPrefix = "SWG-"
	aliasPrefix  = "SW-RESI-"

	// ShortNumberDigits is the width of freshly generated order numbers.
	ShortNumberDigits = 4
	// LongNumberDigits is used once short numbers keep colliding.
	LongNumberDigits = 8
)

var numberPattern = regexp.MustCompile(`^SWG-\d+$`)

// Number is the public order identifier, e.g. "SWG-4821".
type Number string

// GenerateNumber draws a random number with the given count of digits and no
// leading zero.
func GenerateNumber(digits int) Number {
	if digits < 1 {
		digits = ShortNumberDigits
	}
	lo := int64(1)
	for range digits - 1 {
		lo *= 10
	}
	n := lo + rand.Int64N(9*lo)
	return Number(fmt.Sprintf("%s%d", numberPrefix, n))
}

// ParseNumber accepts an order number or its receipt alias in any case and
// returns the canonical order number.
func ParseNumber(s string) (Number, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if digits, ok := strings.CutPrefix(raw, aliasPrefix); ok {
		raw = numberPrefix + digits
	}
	if !numberPattern.MatchString(raw) {
		return "", errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q is not an order number", s))
	}
	return Number(raw), nil
}

func (n Number) String() string {
	return string(n)
}

// Digits returns the numeric part.
func (n Number) Digits() string {
	return strings.TrimPrefix(string(n), numberPrefix)
}

// ReceiptAlias is the form printed on receipts, e.g. "SW-RESI-4821".
func (n Number) ReceiptAlias() string {
	return aliasPrefix + n.Digits()
}

func (n Number) Validate() error {
	if !numberPattern.MatchString(string(n)) {
		return errs.NewValueIsInvalidErrorWithCause("order number", fmt.Errorf("%q is not an order number", string(n)))
	}
	return nil
}
