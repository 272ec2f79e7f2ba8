// Package ports defines the contracts between the parcel hub application layer
// and the adapters that hold its state.
package ports

import (
	"errors"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

var (
	// ErrNotSignedIn is returned by operations that need an active identity.
	ErrNotSignedIn = errors.New("no identity is signed in")

	// ErrRoleNotAllowed is returned when the active identity's role may not run an operation.
	ErrRoleNotAllowed = errors.New("operation is not allowed for the active role")
)

// OrderStore is the authoritative state of the hub: the orders, newest first,
// and the identity currently signed in. Every mutation is atomic for readers and
// every read returns a snapshot the caller may keep.
type OrderStore interface {
	// SignIn replaces the active identity unconditionally. Credentials are not
	// checked here. It fails only if id is empty or role is invalid.
	SignIn(id string, role identity.Role) error

	// SignOut clears the active identity. Calling it when nobody is signed in is a no-op.
	SignOut()

	// ActiveIdentity returns the signed-in identity, or false if there is none.
	ActiveIdentity() (identity.Identity, bool)

	// CreateOrder registers a Pending order under a fresh token and puts it first
	// in the collection. Field values are stored as given.
	// Returns ErrNotSignedIn when no identity is active.
	CreateOrder(ownerID, submitterName, phoneNumber, itemDescription string, category order.Category) (order.Order, error)

	// UpdateStatus moves the order with the given token to status, stamping the
	// pickup time when status is PickedUp.
	//
	// Errors leave every order untouched:
	//   - ErrNotSignedIn when no identity is active
	//   - errs.ErrObjectNotFound when no order has the token
	//   - errs.ErrValueIsInvalid when status is not a valid status
	UpdateStatus(token kernel.Token, status order.Status) error

	// Orders returns every order, newest first. This is the staff view.
	Orders() []order.Order

	// OrdersOwnedBy returns the orders filed under ownerID, newest first.
	OrdersOwnedBy(ownerID string) []order.Order

	// VisibleOrders returns the projection for the active identity: its own
	// orders for a student, every order for staff.
	// Returns ErrNotSignedIn when no identity is active.
	VisibleOrders() ([]order.Order, error)
}
