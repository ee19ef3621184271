package kernel

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMeasure converts a weight or dimension as typed into the shipment form.
// The longest leading decimal number is used, so "2.5kg" reads as 2.5. A comma
// is accepted as the decimal separator, so "1,5 kg" reads as 1.5.
// Blank, malformed and negative input all yield zero.
func ParseMeasure(raw string) decimal.Decimal {
	s := strings.Replace(numericPrefix(strings.TrimSpace(raw)), ",", ".", 1)
	if s == "" {
		return decimal.Zero
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func numericPrefix(s string) string {
	end := 0
	seenDigit, seenDot := false, false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
			end = i + 1
		case (r == '.' || r == ',') && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			if !seenDigit {
				return ""
			}
			return s[:end]
		}
	}
	if !seenDigit {
		return ""
	}
	return s[:end]
}
