package cmd

import (
	"fmt"
	"log/slog"
	"time"

	httpadapter "parcelhub/internal/adapters/in/http"
	"parcelhub/internal/adapters/out/credentials"
	"parcelhub/internal/adapters/out/memory"
	"parcelhub/internal/adapters/out/preferences"
	"parcelhub/internal/core/application/usecases/commands"
	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/core/domain/model/preference"
	"parcelhub/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the process-wide state (one order store, one preference
// file, one staff account) and builds every handler over it.
type CompositionRoot struct {
	configs     Config
	logger      *slog.Logger
	store       *memory.OrderStore
	preferences *preferences.Repository
	verifier    *credentials.StaffVerifier
}

func NewCompositionRoot(configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	defaultTheme, err := preference.ParseTheme(configs.DefaultTheme)
	if err != nil {
		return nil, fmt.Errorf("default theme: %w", err)
	}

	tokens := kernel.NewMonotonicTokenGenerator(nil)
	store := memory.NewOrderStore(memory.WithTokenGenerator(tokens))
	if configs.SeedDemoOrders {
		demo, demoErr := memory.DemoOrders(time.Now(), tokens)
		if demoErr != nil {
			return nil, demoErr
		}
		if err = store.Seed(demo...); err != nil {
			return nil, fmt.Errorf("seed demo orders: %w", err)
		}
	}

	prefs, err := preferences.NewRepository(configs.PreferencesFile, defaultTheme)
	if err != nil {
		return nil, err
	}

	verifier, err := credentials.NewStaffVerifier(configs.StaffUsername, configs.StaffPassword, 0)
	if err != nil {
		return nil, fmt.Errorf("staff account: %w", err)
	}

	return &CompositionRoot{
		configs:     configs,
		logger:      logger,
		store:       store,
		preferences: prefs,
		verifier:    verifier,
	}, nil
}

func (c *CompositionRoot) CreateSignInCommandHandler() commands.SignInCommandHandler {
	return commands.NewSignInCommandHandler(c.store, c.verifier)
}

func (c *CompositionRoot) CreateSignOutCommandHandler() commands.SignOutCommandHandler {
	return commands.NewSignOutCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.store)
}

func (c *CompositionRoot) CreateToggleThemeCommandHandler() commands.ToggleThemeCommandHandler {
	return commands.NewToggleThemeCommandHandler(c.preferences)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetVisibleOrdersQueryHandler() queries.GetVisibleOrdersQueryHandler {
	return queries.NewGetVisibleOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetHubStatsQueryHandler() queries.GetHubStatsQueryHandler {
	return queries.NewGetHubStatsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetThemeQueryHandler() queries.GetThemeQueryHandler {
	return queries.NewGetThemeQueryHandler(c.preferences)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateSignInCommandHandler(),
		c.CreateSignOutCommandHandler(),
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateToggleThemeCommandHandler(),
		c.CreateGetSessionQueryHandler(),
		c.CreateGetVisibleOrdersQueryHandler(),
		c.CreateGetHubStatsQueryHandler(),
		c.CreateGetThemeQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(c.CreateHTTPServer(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetHubStatsQueryHandler(), c.configs.StatsSchedule, c.logger)
}
