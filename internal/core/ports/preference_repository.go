package ports

import (
	"context"

	"parcelhub/internal/core/domain/model/preference"
)

// PreferenceRepository persists display preferences across process restarts.
type PreferenceRepository interface {
	// Theme returns the stored theme, or the repository's default when none was saved.
	Theme(ctx context.Context) (preference.Theme, error)

	// SaveTheme stores theme so the next process start sees it.
	SaveTheme(ctx context.Context, theme preference.Theme) error
}
