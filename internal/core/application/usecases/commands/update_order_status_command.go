package commands

import (
	"errors"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand moves one parcel to a new status. Any valid status may
// follow any other, including the current one.
type UpdateOrderStatusCommand struct {
	token  kernel.Token
	status order.Status

	guard guard.ConstructorGuard
}

func NewUpdateOrderStatusCommand(token kernel.Token, status order.Status) (UpdateOrderStatusCommand, error) {
	if err := errors.Join(token.Validate(), status.Validate()); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		token:  token,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

func (c UpdateOrderStatusCommand) Token() kernel.Token {
	return c.token
}

func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
