package commands

import (
	"context"
	"fmt"

	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/core/ports"
)

// ToggleThemeCommandHandler flips the stored theme. It works with or without a
// signed-in identity.
type ToggleThemeCommandHandler struct {
	preferences ports.PreferenceRepository
}

func NewToggleThemeCommandHandler(preferences ports.PreferenceRepository) ToggleThemeCommandHandler {
	return ToggleThemeCommandHandler{preferences: preferences}
}

// Handle returns the theme now in effect.
func (h ToggleThemeCommandHandler) Handle(ctx context.Context, cmd ToggleThemeCommand) (preference.Theme, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	current, err := h.preferences.Theme(ctx)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}

	next := current.Toggled()
	if err = h.preferences.SaveTheme(ctx, next); err != nil {
		return "", fmt.Errorf("save theme: %w", err)
	}
	return next, nil
}
