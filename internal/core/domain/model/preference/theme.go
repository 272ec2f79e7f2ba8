// Package preference holds display preferences that outlive a process,
// independent of orders and identities.
package preference

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Theme is the light/dark display preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Theme) Validate() error {
	if t != Light && t != Dark {
		return errs.NewValueIsInvalidErrorWithCause("theme is invalid", fmt.Errorf("%q is not a valid theme", string(t)))
	}
	return nil
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}
