// Package errs provides standardized error types for the parcel hub.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing or empty
//   - ValueIsInvalidError: a value is present but not acceptable
//   - ObjectNotFoundError: a lookup by identifier matched nothing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies it
//
// Adapters map the sentinels to transport status codes (404 for
// ErrObjectNotFound, 400 for the value errors).
package errs
