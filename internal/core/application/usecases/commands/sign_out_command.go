package commands

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrSignOutCommandIsNotConstructed = errors.New(
	"SignOutCommand must be created via NewSignOutCommand constructor",
)

// SignOutCommand clears the active identity.
type SignOutCommand struct {
	guard guard.ConstructorGuard
}

func NewSignOutCommand() SignOutCommand {
	return SignOutCommand{guard: guard.NewConstructorGuard()}
}

func (c SignOutCommand) Validate() error {
	return c.guard.Validate(ErrSignOutCommandIsNotConstructed)
}
