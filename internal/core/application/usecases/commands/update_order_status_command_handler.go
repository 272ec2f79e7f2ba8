package commands

import (
	"context"

	"parcelhub/internal/core/ports"
)

// UpdateOrderStatusCommandHandler lets staff move a parcel through the pickup
// lifecycle. Moving to PickedUp stamps the pickup time.
type UpdateOrderStatusCommandHandler struct {
	store StatusUpdater
}

func NewUpdateOrderStatusCommandHandler(store StatusUpdater) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{store: store}
}

// Handle returns ports.ErrNotSignedIn, ports.ErrRoleNotAllowed for students, or
// errs.ErrObjectNotFound when the token is unknown. Nothing changes on error.
func (h UpdateOrderStatusCommandHandler) Handle(_ context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	who, ok := h.store.ActiveIdentity()
	if !ok {
		return ports.ErrNotSignedIn
	}
	if !who.IsStaff() {
		return ports.ErrRoleNotAllowed
	}

	return h.store.UpdateStatus(cmd.Token(), cmd.Status())
}
