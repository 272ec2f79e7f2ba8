package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/core/ports"
)

type GetThemeQueryHandler struct {
	preferences ports.PreferenceRepository
}

func NewGetThemeQueryHandler(preferences ports.PreferenceRepository) GetThemeQueryHandler {
	return GetThemeQueryHandler{preferences: preferences}
}

// Handle returns the repository default when no theme was saved yet.
func (h GetThemeQueryHandler) Handle(ctx context.Context, query GetThemeQuery) (preference.Theme, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}
	return h.preferences.Theme(ctx)
}
