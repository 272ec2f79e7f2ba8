package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/ports"
)

// SignInCommandHandler makes the requested identity active, replacing whoever
// was signed in. Staff credentials are verified first; a rejected attempt leaves
// the current session untouched.
type SignInCommandHandler struct {
	store    SessionStore
	verifier ports.StaffVerifier
}

func NewSignInCommandHandler(store SessionStore, verifier ports.StaffVerifier) SignInCommandHandler {
	return SignInCommandHandler{
		store:    store,
		verifier: verifier,
	}
}

// Handle returns the identity that is now active.
func (h SignInCommandHandler) Handle(_ context.Context, cmd SignInCommand) (identity.Identity, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Identity{}, err
	}

	if cmd.Role() == identity.Staff {
		if err := h.verifier.Verify(cmd.ID(), cmd.Password()); err != nil {
			return identity.Identity{}, err
		}
	}

	if err := h.store.SignIn(cmd.ID(), cmd.Role()); err != nil {
		return identity.Identity{}, err
	}

	who, ok := h.store.ActiveIdentity()
	if !ok {
		return identity.Identity{}, ports.ErrNotSignedIn
	}
	return who, nil
}
