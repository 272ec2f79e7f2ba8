package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrGetThemeQueryIsNotConstructed = errors.New(
	"GetThemeQuery must be created via NewGetThemeQuery constructor",
)

// GetThemeQuery reads the stored display theme.
type GetThemeQuery struct {
	guard guard.ConstructorGuard
}

func NewGetThemeQuery() GetThemeQuery {
	return GetThemeQuery{guard: guard.NewConstructorGuard()}
}

func (q GetThemeQuery) Validate() error {
	return q.guard.Validate(ErrGetThemeQueryIsNotConstructed)
}
