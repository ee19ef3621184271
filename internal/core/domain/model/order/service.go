package order

import (
	"fmt"
	"strings"

	"swiftgo/internal/pkg/errs"
)

// Service is the delivery speed tier.
type Service int

const (
	UnknownService Service = iota
	Reguler
	Express
	SameDay
)

func getServiceStrings() map[Service]string {
	return map[Service]string{
		UnknownService: "Unknown",
		Reguler:        "Reguler",
		Express:        "Express",
		SameDay:        "Same Day",
	}
}

// AllServices returns the service tiers in display order.
func AllServices() []Service {
	return []Service{Reguler, Express, SameDay}
}

// ParseService accepts "Reguler", "Express", "Same Day" and "SameDay" in any case.
func ParseService(s string) (Service, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	switch key {
	case "reguler", "regular":
		return Reguler, nil
	case "express":
		return Express, nil
	case "sameday":
		return SameDay, nil
	default:
		return UnknownService, errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%q is not a service tier", s))
	}
}

func (s Service) Validate() error {
	if s < Reguler || s > SameDay {
		return errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%d is not a service tier", s))
	}
	return nil
}

func (s Service) String() string {
	if str, ok := getServiceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Payment is how the shipment is paid for.
type Payment int

const (
	UnknownPayment Payment = iota
	// COD is paid in cash by the receiver and never touches the wallet.
	COD
	// NonCOD is prepaid from the wallet at creation.
	NonCOD
)

// ParsePayment accepts "COD", "Non-COD" and "NonCOD" in any case.
func ParsePayment(s string) (Payment, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", " ", "", "_", "").Replace(strings.TrimSpace(s)))
	switch key {
	case "cod":
		return COD, nil
	case "noncod":
		return NonCOD, nil
	default:
		return UnknownPayment, errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%q is not a payment method", s))
	}
}

func (p Payment) Validate() error {
	if p != COD && p != NonCOD {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%d is not a payment method", p))
	}
	return nil
}

func (p Payment) String() string {
	switch p {
	case COD:
		return "COD"
	case NonCOD:
		return "Non-COD"
	default:
		return "Unknown"
	}
}

// IsPrepaid reports whether the wallet pays for the order.
func (p Payment) IsPrepaid() bool {
	return p == NonCOD
}
