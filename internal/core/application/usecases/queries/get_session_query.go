package queries

import (
	"errors"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/pkg/guard"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery asks who is signed in.
type GetSessionQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSessionQuery() GetSessionQuery {
	return GetSessionQuery{guard: guard.NewConstructorGuard()}
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

type GetSessionQueryResponse struct {
	ID   string
	Role identity.Role
}
