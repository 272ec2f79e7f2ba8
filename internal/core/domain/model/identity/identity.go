package identity

import (
	"errors"
	"fmt"

	"parcelhub/internal/pkg/errs"
	"parcelhub/internal/pkg/guard"
)

var ErrIdentityIsNotConstructed = errors.New("Identity must be created via NewIdentity constructor")

// Role decides which orders an identity sees and which commands it may run.
type Role int

const (
	UnknownRole Role = iota

	// Student sees only the orders filed under its register number and may register parcels.
	Student

	// Staff sees every order and may change order statuses.
	Staff
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Student: "student",
		Staff:   "staff",
	}
}

// ParseRole converts the String form of a role back to a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Identity is the signed-in actor. It is a value object: two identities with the
// same id and role are interchangeable.
type Identity struct {
	id    string
	role  Role
	guard guard.ConstructorGuard
}

// NewIdentity builds an identity for a non-empty id and a valid role.
func NewIdentity(id string, role Role) (Identity, error) {
	if err := errors.Join(validateID(id), role.Validate()); err != nil {
		return Identity{}, err
	}
	return Identity{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func validateID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("identity id")
	}
	return nil
}

func (i Identity) Validate() error {
	return i.guard.Validate(ErrIdentityIsNotConstructed)
}

// ID returns the register number for students and the username for staff.
func (i Identity) ID() string {
	return i.id
}

func (i Identity) Role() Role {
	return i.role
}

func (i Identity) IsStudent() bool {
	return i.role == Student
}

func (i Identity) IsStaff() bool {
	return i.role == Staff
}

func (i Identity) IsEqual(other Identity) bool {
	return i.id == other.id && i.role == other.role
}
