// Package http serves the parcel hub API over echo. Requests under /api/ are
// validated against the embedded OpenAPI document before they reach the Server.
package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"parcelhub/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance with middleware, health check, Swagger UI
// and every API route bound to si.
func NewRouter(si servers.ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}

	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(RequestLogger(logger))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err = registerSwagger(e, doc); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, si)
	return e, nil
}

// httpErrorHandler renders echo errors (unknown route, bad path parameter,
// recovered panic) with the same body as application errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := errInternal.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, servers.Error{Code: code, Message: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
