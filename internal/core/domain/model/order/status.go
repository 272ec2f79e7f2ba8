package order

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Status represents the pickup lifecycle of a parcel.
//
//	Pending <──> ReachedHub <──> PickedUp
//	   ^                            │
//	   └────────────────────────────┘
//
// Every transition between valid statuses is allowed; staff may correct a
// status in any direction.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the parcel is registered but not yet at the hub.
	Pending

	// ReachedHub means the parcel was delivered to the hub and awaits the student.
	ReachedHub

	// PickedUp means the student collected the parcel.
	PickedUp
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		ReachedHub: "ReachedHub",
		PickedUp:   "PickedUp",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label shown to users
	return map[Status]string{
		Pending:    "Pending",
		ReachedHub: "Reached Hub",
		PickedUp:   "Picked Up",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, ReachedHub, PickedUp}
}

// ParseStatus converts the String form of a status back to a Status.
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of Pending, ReachedHub or PickedUp.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the identifier form of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the human-readable status shown on dashboards.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}
