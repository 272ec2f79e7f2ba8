package queries

import (
	"errors"
	"time"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/guard"
)

var ErrGetVisibleOrdersQueryIsNotConstructed = errors.New(
	"GetVisibleOrdersQuery must be created via NewGetVisibleOrdersQuery constructor",
)

// GetVisibleOrdersQuery lists the orders the signed-in identity may see: every
// order for staff, the student's own orders otherwise. Both lists are newest first.
//
// Example:
//
//	orders, err := handler.Handle(ctx, NewGetVisibleOrdersQuery())
//	if errors.Is(err, ports.ErrNotSignedIn) {
//	    // ask the user to sign in
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.Token, o.ItemDescription, o.Status.Label())
//	}
type GetVisibleOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetVisibleOrdersQuery() GetVisibleOrdersQuery {
	return GetVisibleOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetVisibleOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVisibleOrdersQueryIsNotConstructed)
}

// GetVisibleOrdersQueryResponse is a flat copy of one order.
// PickedUpAt is nil until the order has been picked up at least once.
type GetVisibleOrdersQueryResponse struct {
	Token           string
	OwnerID         string
	SubmitterName   string
	PhoneNumber     string
	ItemDescription string
	Category        order.Category
	Status          order.Status
	SubmittedAt     time.Time
	PickedUpAt      *time.Time
}
