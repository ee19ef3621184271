package wallet

import (
	"fmt"
	"strings"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
)

// EntryType tells whether an entry raised or lowered the balance.
type EntryType string

const (
	Increase EntryType = "increase"
	Decrease EntryType = "decrease"
)

func ParseEntryType(s string) (EntryType, error) {
	switch t := EntryType(strings.ToLower(strings.TrimSpace(s))); t {
	case Increase, Decrease:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("entry type", fmt.Errorf("%q is not an entry type", s))
	}
}

// Entry is one line of the wallet history.
type Entry struct {
	ID          kernel.UUID
	Type        EntryType
	Amount      kernel.Money
	Description string
	Timestamp   time.Time
}

// Signed returns the amount with the sign of its effect on the balance.
func (e Entry) Signed() kernel.Money {
	if e.Type == Decrease {
		return -e.Amount
	}
	return e.Amount
}

func (e Entry) Validate() error {
	if err := e.ID.Validate(); err != nil {
		return err
	}
	if _, err := ParseEntryType(string(e.Type)); err != nil {
		return err
	}
	if e.Amount < 0 {
		return errs.NewValueIsOutOfRangeError("entry amount", int64(e.Amount), 0, "unbounded")
	}
	return nil
}
