package http

import (
	"net/http"

	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/identity"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/ports"
	"parcelhub/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	signInHandler            commands.SignInCommandHandler
	signOutHandler           commands.SignOutCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	toggleThemeHandler       commands.ToggleThemeCommandHandler

	// Query handlers
	getSessionHandler       queries.GetSessionQueryHandler
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler
	getHubStatsHandler      queries.GetHubStatsQueryHandler
	getThemeHandler         queries.GetThemeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	signInHandler commands.SignInCommandHandler,
	signOutHandler commands.SignOutCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	toggleThemeHandler commands.ToggleThemeCommandHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler,
	getHubStatsHandler queries.GetHubStatsQueryHandler,
	getThemeHandler queries.GetThemeQueryHandler,
) *Server {
	return &Server{
		signInHandler:            signInHandler,
		signOutHandler:           signOutHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		toggleThemeHandler:       toggleThemeHandler,
		getSessionHandler:        getSessionHandler,
		getVisibleOrdersHandler:  getVisibleOrdersHandler,
		getHubStatsHandler:       getHubStatsHandler,
		getThemeHandler:          getThemeHandler,
	}
}

// SignIn handles POST /api/v1/session.
func (s *Server) SignIn(ctx echo.Context) error {
	var body servers.SignInJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := roleFromWire(body.Role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var password string
	if body.Password != nil {
		password = *body.Password
	}

	cmd, err := commands.NewSignInCommand(role, body.Id, password)
	if err != nil {
		return errorResponse(ctx, err)
	}

	who, err := s.signInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Id:   who.ID(),
		Role: roleToWire(who.Role()),
	})
}

// GetSession handles GET /api/v1/session.
func (s *Server) GetSession(ctx echo.Context) error {
	session, err := s.getSessionHandler.Handle(ctx.Request().Context(), queries.NewGetSessionQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Session{
		Id:   session.ID,
		Role: roleToWire(session.Role),
	})
}

// SignOut handles DELETE /api/v1/session.
func (s *Server) SignOut(ctx echo.Context) error {
	if err := s.signOutHandler.Handle(ctx.Request().Context(), commands.NewSignOutCommand()); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.getVisibleOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetVisibleOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = orderToWire(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := categoryFromWire(body.Category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(body.SubmitterName, body.PhoneNumber, body.ItemDescription, category)
	if err != nil {
		return errorResponse(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, domainOrderToWire(&created))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{token}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, token string) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderToken, err := kernel.TokenFromString(token)
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := statusFromWire(body.Status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderToken, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetHubStats handles GET /api/v1/stats. Only staff may read the counters.
func (s *Server) GetHubStats(ctx echo.Context) error {
	session, err := s.getSessionHandler.Handle(ctx.Request().Context(), queries.NewGetSessionQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}
	if session.Role != identity.Staff {
		return errorResponse(ctx, ports.ErrRoleNotAllowed)
	}

	stats, err := s.getHubStatsHandler.Handle(ctx.Request().Context(), queries.NewGetHubStatsQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.HubStats{
		Total:      stats.Total,
		Pending:    stats.Pending,
		ReachedHub: stats.ReachedHub,
		PickedUp:   stats.PickedUp,
	})
}

// GetTheme handles GET /api/v1/preferences/theme.
func (s *Server) GetTheme(ctx echo.Context) error {
	theme, err := s.getThemeHandler.Handle(ctx.Request().Context(), queries.NewGetThemeQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.ThemePreference{Theme: servers.Theme(theme)})
}

// ToggleTheme handles POST /api/v1/preferences/theme/toggle.
func (s *Server) ToggleTheme(ctx echo.Context) error {
	theme, err := s.toggleThemeHandler.Handle(ctx.Request().Context(), commands.NewToggleThemeCommand())
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.ThemePreference{Theme: servers.Theme(theme)})
}
