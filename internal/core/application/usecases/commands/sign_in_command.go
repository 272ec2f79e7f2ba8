package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand asks to make an identity active.
//
// Students sign in with their register number, which is trimmed and upper-cased
// ("  s010 " becomes "S010"); no password is needed. Staff sign in with a
// username and password checked by a ports.StaffVerifier.
//
// Example:
//
//	cmd, err := NewSignInCommand(identity.Staff, "admin", "password")
//	if err != nil {
//	    return err
//	}
//	who, err := handler.Handle(ctx, cmd)
type SignInCommand struct { //nolint:recvcheck //using for validation
	id       string
	role     identity.Role
	password string

	guard guard.ConstructorGuard
}

func NewSignInCommand(role identity.Role, id, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		password: password,
		guard:    guard.NewConstructorGuard(),
	}

	if err := role.Validate(); err != nil {
		return SignInCommand{}, err
	}
	cmd.role = role

	if err := cmd.setID(id); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// ID returns the normalised register number or staff username.
func (c SignInCommand) ID() string {
	return c.id
}

func (c SignInCommand) Role() identity.Role {
	return c.role
}

// Password is only meaningful for staff.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setID(id string) error {
	id = strings.TrimSpace(id)
	if c.role == identity.Student {
		id = strings.ToUpper(id)
	}
	if id == "" {
		if c.role == identity.Student {
			return errs.NewValueIsRequiredError("register number")
		}
		return errs.NewValueIsRequiredError("username")
	}

	c.id = id
	return nil
}
