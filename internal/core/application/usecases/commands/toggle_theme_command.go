package commands

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrToggleThemeCommandIsNotConstructed = errors.New(
	"ToggleThemeCommand must be created via NewToggleThemeCommand constructor",
)

// ToggleThemeCommand switches between the light and dark themes.
type ToggleThemeCommand struct {
	guard guard.ConstructorGuard
}

func NewToggleThemeCommand() ToggleThemeCommand {
	return ToggleThemeCommand{guard: guard.NewConstructorGuard()}
}

func (c ToggleThemeCommand) Validate() error {
	return c.guard.Validate(ErrToggleThemeCommandIsNotConstructed)
}
