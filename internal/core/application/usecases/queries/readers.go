// Package queries contains read-only operations over the hub state.
// Handlers never mutate the store and every result is a snapshot the caller may keep.
package queries

import (
	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/order"
)

type (
	// IdentityReader exposes the signed-in identity.
	IdentityReader interface {
		ActiveIdentity() (identity.Identity, bool)
	}

	// VisibleOrdersReader returns the projection for the signed-in identity.
	VisibleOrdersReader interface {
		VisibleOrders() ([]order.Order, error)
	}

	// AllOrdersReader returns every order regardless of who is signed in.
	AllOrdersReader interface {
		Orders() []order.Order
	}
)
