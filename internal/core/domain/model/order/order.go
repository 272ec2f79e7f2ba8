package order

import (
	"errors"
	"fmt"
	"time"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a parcel registered at the hub by a student. It is the aggregate root
// of the pickup lifecycle.
//
// Order follows these invariants:
//   - Token, owner, free-text fields, category and submission time never change
//   - Status is always one of Pending, ReachedHub, PickedUp
//   - A PickedUp order always has a pickup time
//
// The free-text fields are stored as given. Presence checks belong to the
// command layer that collects them.
type Order struct {
	token kernel.Token

	// ownerID is the register number of the student who filed the order
	ownerID string

	submitterName   string
	phoneNumber     string
	itemDescription string
	category        Category

	status Status

	submittedAt time.Time

	// pickedUpAt is set when the order moves to PickedUp and is never cleared
	pickedUpAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder registers a parcel in Pending status with no pickup time.
//
// Example:
//
//	tokens := kernel.NewMonotonicTokenGenerator(nil)
//	o, err := order.NewOrder(tokens.Next(), "S010", "Carol", "555-9999", "Textbook", order.Shopping, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	token kernel.Token,
	ownerID, submitterName, phoneNumber, itemDescription string,
	category Category,
	submittedAt time.Time,
) (*Order, error) {
	o := &Order{
		ownerID:         ownerID,
		submitterName:   submitterName,
		phoneNumber:     phoneNumber,
		itemDescription: itemDescription,
		status:          Pending,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setToken(token),
		o.setCategory(category),
		o.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order in an arbitrary state, e.g. demo data loaded at
// startup. A PickedUp order must carry its pickup time; other statuses may
// carry a stale one.
func RestoreOrder(
	token kernel.Token,
	ownerID, submitterName, phoneNumber, itemDescription string,
	category Category,
	status Status,
	submittedAt time.Time,
	pickedUpAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(token, ownerID, submitterName, phoneNumber, itemDescription, category, submittedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status == PickedUp && pickedUpAt == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"pickup time",
			fmt.Errorf("%s orders must have a pickup time", status),
		)
	}

	o.status = status
	if pickedUpAt != nil {
		at := *pickedUpAt
		o.pickedUpAt = &at
	}
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) Token() kernel.Token {
	return o.token
}

// OwnerID returns the register number of the student who filed the order.
func (o *Order) OwnerID() string {
	return o.ownerID
}

func (o *Order) SubmitterName() string {
	return o.submitterName
}

func (o *Order) PhoneNumber() string {
	return o.phoneNumber
}

func (o *Order) ItemDescription() string {
	return o.itemDescription
}

func (o *Order) Category() Category {
	return o.category
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

// PickedUpAt returns a copy of the pickup time, or nil if the order was never picked up.
func (o *Order) PickedUpAt() *time.Time {
	if o.pickedUpAt == nil {
		return nil
	}
	at := *o.pickedUpAt
	return &at
}

// IsOwnedBy reports whether the order was filed by the student with the given register number.
func (o *Order) IsOwnedBy(ownerID string) bool {
	return o.ownerID == ownerID
}

// ChangeStatus moves the order to status. Moving to PickedUp sets the pickup
// time to at, overwriting an earlier one. Any other target leaves the pickup
// time as it was.
func (o *Order) ChangeStatus(status Status, at time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	if status == PickedUp {
		o.pickedUpAt = &at
	}
	return nil
}

func (o *Order) setToken(token kernel.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}
	o.token = token
	return nil
}

func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setSubmittedAt(submittedAt time.Time) error {
	if submittedAt.IsZero() {
		return errs.NewValueIsRequiredError("submission time")
	}
	o.submittedAt = submittedAt
	return nil
}
