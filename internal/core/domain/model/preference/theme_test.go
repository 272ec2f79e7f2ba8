package preference_test

import (
	"testing"

	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTheme(t *testing.T) {
	theme, err := preference.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, preference.Dark, theme)

	_, err = preference.ParseTheme("solarized")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = preference.ParseTheme("")
	require.Error(t, err)
}

func TestTheme_Toggled(t *testing.T) {
	assert.Equal(t, preference.Dark, preference.Light.Toggled())
	assert.Equal(t, preference.Light, preference.Dark.Toggled())
}
