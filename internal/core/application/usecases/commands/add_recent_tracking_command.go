package commands

import (
	"errors"
	"strings"

	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

var ErrAddRecentTrackingCommandIsNotConstructed = errors.New(
	"AddRecentTrackingCommand must be created via NewAddRecentTrackingCommand constructor",
)

// AddRecentTrackingCommand remembers a looked-up tracking number.
type AddRecentTrackingCommand struct { //nolint:recvcheck //using for validation
	number string

	guard guard.ConstructorGuard
}

func NewAddRecentTrackingCommand(number string) (AddRecentTrackingCommand, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return AddRecentTrackingCommand{}, errs.NewValueIsRequiredError("tracking number")
	}

	return AddRecentTrackingCommand{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c AddRecentTrackingCommand) Validate() error {
	return c.guard.Validate(ErrAddRecentTrackingCommandIsNotConstructed)
}

func (c AddRecentTrackingCommand) Number() string {
	return c.number
}
