// Package commands contains the operations that change hub state: signing in and
// out, registering parcels, moving them through the pickup lifecycle and
// switching the display theme.
//
// Every command follows the same pattern: a constructor that validates and
// normalises input, and a handler that checks the active identity's role before
// touching the store.
package commands

import (
	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
)

// Narrow views of ports.OrderStore, one per handler.
type (
	// IdentityProvider exposes the signed-in identity.
	IdentityProvider interface {
		ActiveIdentity() (identity.Identity, bool)
	}

	// SessionStore switches the active identity.
	SessionStore interface {
		IdentityProvider
		SignIn(id string, role identity.Role) error
		SignOut()
	}

	// OrderRegistry registers new parcels.
	OrderRegistry interface {
		IdentityProvider
		CreateOrder(
			ownerID, submitterName, phoneNumber, itemDescription string,
			category order.Category,
		) (order.Order, error)
	}

	// StatusUpdater moves parcels through the pickup lifecycle.
	StatusUpdater interface {
		IdentityProvider
		UpdateStatus(token kernel.Token, status order.Status) error
	}
)
