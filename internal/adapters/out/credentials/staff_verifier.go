// Package credentials checks staff sign-in credentials against the account
// configured for the hub.
package credentials

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"parcelhub/internal/core/ports"
	"parcelhub/internal/pkg/errs"
)

var _ ports.StaffVerifier = (*StaffVerifier)(nil)

// StaffVerifier holds one staff account. Only the bcrypt hash of the password is
// kept in memory.
type StaffVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaffVerifier hashes password with the given bcrypt cost. A cost of zero
// uses bcrypt.DefaultCost.
func NewStaffVerifier(username, password string, cost int) (*StaffVerifier, error) {
	if err := errors.Join(required("username", username), required("password", password)); err != nil {
		return nil, err
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash staff password: %w", err)
	}

	return &StaffVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

// NewStaffVerifierFromHash uses an existing bcrypt hash, e.g. one kept in configuration.
func NewStaffVerifierFromHash(username string, hash []byte) (*StaffVerifier, error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	if _, err := bcrypt.Cost(hash); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("password hash", err)
	}

	return &StaffVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

func (v *StaffVerifier) Verify(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		return ports.ErrInvalidCredentials
	}
	return nil
}

func required(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
