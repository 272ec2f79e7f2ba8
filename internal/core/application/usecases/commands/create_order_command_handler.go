package commands

import (
	"context"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/core/ports"
)

// CreateOrderCommandHandler registers a parcel for the signed-in student. The
// new order starts Pending and is listed first.
type CreateOrderCommandHandler struct {
	store OrderRegistry
}

func NewCreateOrderCommandHandler(store OrderRegistry) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{store: store}
}

// Handle returns ports.ErrNotSignedIn when nobody is signed in and
// ports.ErrRoleNotAllowed for staff.
func (h CreateOrderCommandHandler) Handle(_ context.Context, cmd CreateOrderCommand) (order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return order.Order{}, err
	}

	who, ok := h.store.ActiveIdentity()
	if !ok {
		return order.Order{}, ports.ErrNotSignedIn
	}
	if !who.IsStudent() {
		return order.Order{}, ports.ErrRoleNotAllowed
	}

	return h.store.CreateOrder(
		who.ID(),
		cmd.SubmitterName(),
		cmd.PhoneNumber(),
		cmd.ItemDescription(),
		cmd.Category(),
	)
}
