package http

import (
	"errors"
	"net/http"

	"parcelhub/internal/core/ports"
	"parcelhub/internal/generated/servers"
	"parcelhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errInternal = errors.New("internal error")

// statusFor maps application errors to HTTP status codes. Anything unrecognised is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ports.ErrNotSignedIn), errors.Is(err, ports.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ports.ErrRoleNotAllowed):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes err as an Error body. Internal failures are reported to
// the echo error log and replaced by a generic message.
func errorResponse(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = errInternal.Error()
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
