// Package profile describes the signed-in user. The role is advisory and only
// steers which views the presentation layer opens by default.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"swiftgo/internal/pkg/errs"
)

type Role string

const (
	Admin    Role = "admin"
	Customer Role = "customer"
)

// ParseRole maps anything that is not "admin" to Customer.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(Admin)) {
		return Admin
	}
	return Customer
}

func (r Role) Validate() error {
	if r != Admin && r != Customer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a role", string(r)))
	}
	return nil
}

type Profile struct {
	Name     string
	Username string
	Phone    string
	Role     Role
}

// Guest is returned before any profile has been saved.
func Guest() Profile {
	return Profile{Name: "Guest", Username: "guest", Role: Customer}
}

func (p Profile) Validate() error {
	var err error
	if strings.TrimSpace(p.Name) == "" {
		err = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(p.Username) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("username"))
	}
	return errors.Join(err, p.Role.Validate())
}

func (p Profile) IsAdmin() bool {
	return p.Role == Admin
}
