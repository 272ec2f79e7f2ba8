package ports

import "errors"

// ErrInvalidCredentials is returned when a staff username/password pair is rejected.
var ErrInvalidCredentials = errors.New("invalid staff credentials")

// StaffVerifier checks staff credentials before a staff identity is signed in.
type StaffVerifier interface {
	// Verify returns ErrInvalidCredentials unless username and password match a staff account.
	Verify(username, password string) error
}
