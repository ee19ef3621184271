package commands

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand asks to move an order to another status.
// The status is kept as received, blank included. Whether it names a real
// status is decided by the handler after the order has been found.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number order.Number
	status string

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(number string, status string) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	cmd.status = status

	return cmd, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Number() order.Number {
	return c.number
}

// Status returns the requested status name as received.
func (c UpdateOrderStatusCommand) Status() string {
	return c.status
}

func (c *UpdateOrderStatusCommand) setNumber(number string) error {
	if strings.TrimSpace(number) == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	c.number = order.Number(strings.ToUpper(strings.TrimSpace(number)))
	return nil
}
