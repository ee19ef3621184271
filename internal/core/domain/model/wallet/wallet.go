package wallet

import (
	"errors"
	"fmt"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
)

// MaxHistory is the number of history entries kept.
const MaxHistory = 10

// ErrInsufficientBalance is returned by Pay when the balance does not cover
// the amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Wallet is the prepaid balance and its recent history, newest first.
type Wallet struct {
	balance kernel.Money
	history []Entry
}

// New returns an empty wallet.
func New() *Wallet {
	return &Wallet{history: make([]Entry, 0, MaxHistory)}
}

// Restore rebuilds a wallet from storage. History beyond MaxHistory is dropped.
func Restore(balance kernel.Money, history []Entry) (*Wallet, error) {
	w := New()
	w.balance = balance
	for i, e := range history {
		if i == MaxHistory {
			break
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("history entry %d: %w", i, err)
		}
		w.history = append(w.history, e)
	}
	return w, nil
}

func (w *Wallet) Balance() kernel.Money {
	return w.balance
}

// History returns a copy of the history, newest first.
func (w *Wallet) History() []Entry {
	out := make([]Entry, len(w.history))
	copy(out, w.history)
	return out
}

// CanPay reports whether the balance covers amount.
func (w *Wallet) CanPay(amount kernel.Money) bool {
	return w.balance >= amount
}

// TopUp adds a positive amount.
func (w *Wallet) TopUp(amount kernel.Money, description string, at time.Time) (Entry, error) {
	if err := positive(amount); err != nil {
		return Entry{}, err
	}
	return w.apply(Increase, amount, description, at), nil
}

// Deduct removes a positive amount without checking the balance.
func (w *Wallet) Deduct(amount kernel.Money, description string, at time.Time) (Entry, error) {
	if err := positive(amount); err != nil {
		return Entry{}, err
	}
	return w.apply(Decrease, amount, description, at), nil
}

// Pay debits an order payment. The wallet is left unchanged on failure.
func (w *Wallet) Pay(amount kernel.Money, description string, at time.Time) (Entry, error) {
	if amount < 0 {
		return Entry{}, errs.NewValueIsOutOfRangeError("amount", int64(amount), 0, "unbounded")
	}
	if !w.CanPay(amount) {
		return Entry{}, fmt.Errorf("%w: balance %s, required %s", ErrInsufficientBalance, w.balance, amount)
	}
	return w.apply(Decrease, amount, description, at), nil
}

// Refund credits back an order payment.
func (w *Wallet) Refund(amount kernel.Money, description string, at time.Time) (Entry, error) {
	if amount < 0 {
		return Entry{}, errs.NewValueIsOutOfRangeError("amount", int64(amount), 0, "unbounded")
	}
	return w.apply(Increase, amount, description, at), nil
}

func (w *Wallet) apply(typ EntryType, amount kernel.Money, description string, at time.Time) Entry {
	e := Entry{
		ID:          kernel.NewUUID(),
		Type:        typ,
		Amount:      amount,
		Description: description,
		Timestamp:   at,
	}
	w.balance += e.Signed()

	history := make([]Entry, 0, MaxHistory)
	history = append(history, e)
	history = append(history, w.history...)
	if len(history) > MaxHistory {
		history = history[:MaxHistory]
	}
	w.history = history
	return e
}

func positive(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeErrorWithCause("amount", int64(amount), 1, "unbounded",
			errors.New("amount must be greater than zero"))
	}
	return nil
}
