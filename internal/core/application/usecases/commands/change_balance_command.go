package commands

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

const (
	defaultTopUpDescription  = "Top up saldo"
	defaultDeductDescription = "Pengurangan saldo"
)

var (
	ErrAddBalanceCommandIsNotConstructed = errors.New(
		"AddBalanceCommand must be created via NewAddBalanceCommand constructor",
	)
	ErrDeductBalanceCommandIsNotConstructed = errors.New(
		"DeductBalanceCommand must be created via NewDeductBalanceCommand constructor",
	)
)

type balanceChange struct {
	amount      kernel.Money
	description string
}

func (b *balanceChange) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("amount", amount.Int64(), 1, "unbounded")
	}
	b.amount = amount
	return nil
}

func (b *balanceChange) setDescription(description, fallback string) {
	description = strings.TrimSpace(description)
	if description == "" {
		description = fallback
	}
	b.description = description
}

// AddBalanceCommand tops up the wallet.
type AddBalanceCommand struct { //nolint:recvcheck //using for validation
	change balanceChange

	guard guard.ConstructorGuard
}

// NewAddBalanceCommand requires a positive amount. A blank description is
// replaced by "Top up saldo".
func NewAddBalanceCommand(amount kernel.Money, description string) (AddBalanceCommand, error) {
	cmd := AddBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.change.setAmount(amount); err != nil {
		return AddBalanceCommand{}, err
	}
	cmd.change.setDescription(description, defaultTopUpDescription)

	return cmd, nil
}

func (c AddBalanceCommand) Validate() error {
	return c.guard.Validate(ErrAddBalanceCommandIsNotConstructed)
}

func (c AddBalanceCommand) Amount() kernel.Money {
	return c.change.amount
}

func (c AddBalanceCommand) Description() string {
	return c.change.description
}

// DeductBalanceCommand removes money from the wallet without a balance check.
type DeductBalanceCommand struct { //nolint:recvcheck //using for validation
	change balanceChange

	guard guard.ConstructorGuard
}

// NewDeductBalanceCommand requires a positive amount. A blank description is
// replaced by "Pengurangan saldo".
func NewDeductBalanceCommand(amount kernel.Money, description string) (DeductBalanceCommand, error) {
	cmd := DeductBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.change.setAmount(amount); err != nil {
		return DeductBalanceCommand{}, err
	}
	cmd.change.setDescription(description, defaultDeductDescription)

	return cmd, nil
}

func (c DeductBalanceCommand) Validate() error {
	return c.guard.Validate(ErrDeductBalanceCommandIsNotConstructed)
}

func (c DeductBalanceCommand) Amount() kernel.Money {
	return c.change.amount
}

func (c DeductBalanceCommand) Description() string {
	return c.change.description
}
