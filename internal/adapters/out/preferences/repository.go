// Package preferences stores display preferences in a dotenv-format file so they
// survive process restarts.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"

	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

const themeKey = "THEME"

var _ ports.PreferenceRepository = (*Repository)(nil)

// Repository keeps preferences as KEY=value lines in a single file. Keys it does
// not know about are preserved on save.
type Repository struct {
	mu           sync.Mutex
	path         string
	defaultTheme preference.Theme
}

func NewRepository(path string, defaultTheme preference.Theme) (*Repository, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if err := defaultTheme.Validate(); err != nil {
		return nil, err
	}

	return &Repository{
		path:         path,
		defaultTheme: defaultTheme,
	}, nil
}

func (r *Repository) Theme(ctx context.Context) (preference.Theme, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return "", err
	}

	raw, ok := values[themeKey]
	if !ok || raw == "" {
		return r.defaultTheme, nil
	}

	theme, err := preference.ParseTheme(raw)
	if err != nil {
		return "", fmt.Errorf("stored theme in %s: %w", r.path, err)
	}
	return theme, nil
}

func (r *Repository) SaveTheme(ctx context.Context, theme preference.Theme) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := theme.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.read()
	if err != nil {
		return err
	}
	values[themeKey] = theme.String()

	if err = godotenv.Write(values, r.path); err != nil {
		return fmt.Errorf("failed to write preferences to %s: %w", r.path, err)
	}
	return nil
}

// read returns the stored values, or an empty map if the file does not exist yet.
func (r *Repository) read() (map[string]string, error) {
	values, err := godotenv.Read(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences from %s: %w", r.path, err)
	}
	return values, nil
}
