package commands

import "context"

type SignOutCommandHandler struct {
	store SessionStore
}

func NewSignOutCommandHandler(store SessionStore) SignOutCommandHandler {
	return SignOutCommandHandler{store: store}
}

// Handle signs out. It succeeds when nobody is signed in.
func (h SignOutCommandHandler) Handle(_ context.Context, cmd SignOutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.store.SignOut()
	return nil
}
