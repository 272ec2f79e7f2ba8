package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Orders visible to the signed-in identity, newest first
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context) error
	// Register a parcel for the signed-in student
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Move an order to a new status (staff)
	// (PUT /api/v1/orders/{token}/status)
	UpdateOrderStatus(ctx echo.Context, token string) error
	// Display theme
	// (GET /api/v1/preferences/theme)
	GetTheme(ctx echo.Context) error
	// Switch between light and dark
	// (POST /api/v1/preferences/theme/toggle)
	ToggleTheme(ctx echo.Context) error
	// Sign out
	// (DELETE /api/v1/session)
	SignOut(ctx echo.Context) error
	// Current identity
	// (GET /api/v1/session)
	GetSession(ctx echo.Context) error
	// Sign in as a student or staff member
	// (POST /api/v1/session)
	SignIn(ctx echo.Context) error
	// Order counts by status (staff)
	// (GET /api/v1/stats)
	GetHubStats(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// UpdateOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	var token string

	err := runtime.BindStyledParameterWithOptions("simple", "token", ctx.Param("token"), &token,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter token: %s", err))
	}

	return w.Handler.UpdateOrderStatus(ctx, token)
}

// GetTheme converts echo context to params.
func (w *ServerInterfaceWrapper) GetTheme(ctx echo.Context) error {
	return w.Handler.GetTheme(ctx)
}

// ToggleTheme converts echo context to params.
func (w *ServerInterfaceWrapper) ToggleTheme(ctx echo.Context) error {
	return w.Handler.ToggleTheme(ctx)
}

// SignOut converts echo context to params.
func (w *ServerInterfaceWrapper) SignOut(ctx echo.Context) error {
	return w.Handler.SignOut(ctx)
}

// GetSession converts echo context to params.
func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	return w.Handler.GetSession(ctx)
}

// SignIn converts echo context to params.
func (w *ServerInterfaceWrapper) SignIn(ctx echo.Context) error {
	return w.Handler.SignIn(ctx)
}

// GetHubStats converts echo context to params.
func (w *ServerInterfaceWrapper) GetHubStats(ctx echo.Context) error {
	return w.Handler.GetHubStats(ctx)
}

// EchoRouter is an interface that wraps the methods of echo.Echo and echo.Group
// so either can be used to register handlers.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.PUT(baseURL+"/api/v1/orders/:token/status", wrapper.UpdateOrderStatus)
	router.GET(baseURL+"/api/v1/preferences/theme", wrapper.GetTheme)
	router.POST(baseURL+"/api/v1/preferences/theme/toggle", wrapper.ToggleTheme)
	router.DELETE(baseURL+"/api/v1/session", wrapper.SignOut)
	router.GET(baseURL+"/api/v1/session", wrapper.GetSession)
	router.POST(baseURL+"/api/v1/session", wrapper.SignIn)
	router.GET(baseURL+"/api/v1/stats", wrapper.GetHubStats)
}
