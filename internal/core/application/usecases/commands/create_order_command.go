package commands

import (
	"errors"
	"strings"

	"parcelhub/internal/core/domain/model/order"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a student registering an incoming parcel.
// The owner is not part of the command: it is always the signed-in student.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Carol", "555-9999", "Textbook", order.Shopping)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to register order: %w", err)
//	}
//	fmt.Printf("Order %s registered\n", created.Token())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	submitterName   string
	phoneNumber     string
	itemDescription string
	category        order.Category

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks that every text field is present (blank counts as
// missing) and that category is valid. Formats are not checked.
func NewCreateOrderCommand(
	submitterName, phoneNumber, itemDescription string,
	category order.Category,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setPresent(&cmd.submitterName, "submitter name", submitterName),
		setPresent(&cmd.phoneNumber, "phone number", phoneNumber),
		setPresent(&cmd.itemDescription, "item description", itemDescription),
		cmd.setCategory(category),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) SubmitterName() string {
	return c.submitterName
}

func (c CreateOrderCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c CreateOrderCommand) ItemDescription() string {
	return c.itemDescription
}

func (c CreateOrderCommand) Category() order.Category {
	return c.category
}

func (c *CreateOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func setPresent(dst *string, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	*dst = value
	return nil
}
