package preferences_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelhub/internal/adapters/out/preferences"
	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/pkg/errs"
)

func TestNewRepository(t *testing.T) {
	t.Run("should reject empty path", func(t *testing.T) {
		repo, err := preferences.NewRepository("", preference.Light)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, repo)
	})

	t.Run("should reject invalid default theme", func(t *testing.T) {
		repo, err := preferences.NewRepository(filepath.Join(t.TempDir(), "prefs"), preference.Theme("sepia"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, repo)
	})
}

func TestRepository_Theme(t *testing.T) {
	t.Run("should return default when file is missing", func(t *testing.T) {
		// Given
		repo, err := preferences.NewRepository(filepath.Join(t.TempDir(), "prefs"), preference.Dark)
		require.NoError(t, err)

		// When
		theme, err := repo.Theme(t.Context())

		// Then
		require.NoError(t, err)
		assert.Equal(t, preference.Dark, theme)
	})

	t.Run("should fail on unknown stored theme", func(t *testing.T) {
		// Given
		path := filepath.Join(t.TempDir(), "prefs")
		require.NoError(t, os.WriteFile(path, []byte("THEME=sepia\n"), 0o600))
		repo, err := preferences.NewRepository(path, preference.Light)
		require.NoError(t, err)

		// When
		_, err = repo.Theme(t.Context())

		// Then
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should honour cancelled context", func(t *testing.T) {
		repo, err := preferences.NewRepository(filepath.Join(t.TempDir(), "prefs"), preference.Light)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err = repo.Theme(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRepository_SaveTheme(t *testing.T) {
	t.Run("should survive a new repository on the same file", func(t *testing.T) {
		// Given
		path := filepath.Join(t.TempDir(), "prefs")
		first, err := preferences.NewRepository(path, preference.Light)
		require.NoError(t, err)

		// When
		require.NoError(t, first.SaveTheme(t.Context(), preference.Dark))
		second, err := preferences.NewRepository(path, preference.Light)
		require.NoError(t, err)
		theme, err := second.Theme(t.Context())

		// Then
		require.NoError(t, err)
		assert.Equal(t, preference.Dark, theme)
	})

	t.Run("should keep unrelated keys", func(t *testing.T) {
		// Given
		path := filepath.Join(t.TempDir(), "prefs")
		require.NoError(t, os.WriteFile(path, []byte("LANGUAGE=en\nTHEME=dark\n"), 0o600))
		repo, err := preferences.NewRepository(path, preference.Light)
		require.NoError(t, err)

		// When
		require.NoError(t, repo.SaveTheme(t.Context(), preference.Light))

		// Then
		values, err := godotenv.Read(path)
		require.NoError(t, err)
		assert.Equal(t, "en", values["LANGUAGE"])
		assert.Equal(t, "light", values["THEME"])
	})

	t.Run("should reject invalid theme", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prefs")
		repo, err := preferences.NewRepository(path, preference.Light)
		require.NoError(t, err)

		err = repo.SaveTheme(t.Context(), preference.Theme(""))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.NoFileExists(t, path)
	})
}
