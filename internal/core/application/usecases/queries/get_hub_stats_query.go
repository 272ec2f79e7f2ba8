package queries

import (
	"errors"

	"parcelhub/internal/pkg/guard"
)

var ErrGetHubStatsQueryIsNotConstructed = errors.New(
	"GetHubStatsQuery must be created via NewGetHubStatsQuery constructor",
)

// GetHubStatsQuery counts every order in the hub by status. It does not look at
// the active identity; callers that serve people decide who may see it.
type GetHubStatsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetHubStatsQuery() GetHubStatsQuery {
	return GetHubStatsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetHubStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetHubStatsQueryIsNotConstructed)
}

// GetHubStatsQueryResponse holds the dashboard counters. Total is the sum of the others.
type GetHubStatsQueryResponse struct {
	Total      int
	Pending    int
	ReachedHub int
	PickedUp   int
}
