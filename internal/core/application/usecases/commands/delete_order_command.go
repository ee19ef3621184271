package commands

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes a delivered order from the history.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	number order.Number

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(number string) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Number() order.Number {
	return c.number
}

func (c *DeleteOrderCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	c.number = order.Number(strings.ToUpper(strings.TrimSpace(number)))
	return nil
}
