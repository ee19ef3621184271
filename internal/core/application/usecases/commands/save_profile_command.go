package commands

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/pkg/guard"
)

var ErrSaveProfileCommandIsNotConstructed = errors.New(
	"SaveProfileCommand must be created via NewSaveProfileCommand constructor",
)

type SaveProfileCommand struct { //nolint:recvcheck //using for validation
	profile profile.Profile

	guard guard.ConstructorGuard
}

// NewSaveProfileCommand trims the fields and maps unknown roles to customer.
func NewSaveProfileCommand(name, username, phone, role string) (SaveProfileCommand, error) {
	p := profile.Profile{
		Name:     strings.TrimSpace(name),
		Username: strings.TrimSpace(username),
		Phone:    strings.TrimSpace(phone),
		Role:     profile.ParseRole(role),
	}
	if err := p.Validate(); err != nil {
		return SaveProfileCommand{}, err
	}

	return SaveProfileCommand{
		profile: p,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SaveProfileCommand) Validate() error {
	return c.guard.Validate(ErrSaveProfileCommandIsNotConstructed)
}

func (c SaveProfileCommand) Profile() profile.Profile {
	return c.profile
}
