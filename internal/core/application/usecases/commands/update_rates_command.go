package commands

import (
	"errors"

	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/pkg/guard"
)

var ErrUpdateRatesCommandIsNotConstructed = errors.New(
	"UpdateRatesCommand must be created via NewUpdateRatesCommand constructor",
)

// UpdateRatesCommand replaces the whole rate table.
type UpdateRatesCommand struct { //nolint:recvcheck //using for validation
	table rates.Table

	guard guard.ConstructorGuard
}

// NewUpdateRatesCommand rejects negative amounts and a discount outside 0..100.
func NewUpdateRatesCommand(table rates.Table) (UpdateRatesCommand, error) {
	if err := table.Validate(); err != nil {
		return UpdateRatesCommand{}, err
	}

	return UpdateRatesCommand{
		table: table,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateRatesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRatesCommandIsNotConstructed)
}

func (c UpdateRatesCommand) Table() rates.Table {
	return c.table
}
