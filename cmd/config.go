package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
)

type Config struct {
	HTTPPort        string
	StaffUsername   string
	StaffPassword   string
	PreferencesFile string
	DefaultTheme    string
	SeedDemoOrders  bool
	StatsSchedule   string
	LogLevel        slog.Level
}

// Environment keys read by ConfigFromEnv.
const (
	EnvHTTPPort        = "HTTP_PORT"
	EnvStaffUsername   = "STAFF_USERNAME"
	EnvStaffPassword   = "STAFF_PASSWORD"
	EnvPreferencesFile = "PREFERENCES_FILE"
	EnvDefaultTheme    = "DEFAULT_THEME"
	EnvSeedDemoOrders  = "SEED_DEMO_ORDERS"
	EnvStatsSchedule   = "STATS_SCHEDULE"
	EnvLogLevel        = "LOG_LEVEL"
)

func DefaultConfig() Config {
	return Config{
		HTTPPort:        "8080",
		StaffUsername:   "admin",
		StaffPassword:   "password",
		PreferencesFile: ".preferences",
		DefaultTheme:    "light",
		SeedDemoOrders:  true,
		StatsSchedule:   "@every 1m",
		LogLevel:        slog.LevelInfo,
	}
}

// ConfigFromEnv overlays the variables found by lookup (usually os.LookupEnv)
// on DefaultConfig. Empty values count as unset.
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	config := DefaultConfig()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvHTTPPort); ok {
		config.HTTPPort = v
	}
	if v, ok := get(EnvStaffUsername); ok {
		config.StaffUsername = v
	}
	if v, ok := get(EnvStaffPassword); ok {
		config.StaffPassword = v
	}
	if v, ok := get(EnvPreferencesFile); ok {
		config.PreferencesFile = v
	}
	if v, ok := get(EnvDefaultTheme); ok {
		config.DefaultTheme = v
	}
	if v, ok := get(EnvStatsSchedule); ok {
		config.StatsSchedule = v
	}

	if v, ok := get(EnvSeedDemoOrders); ok {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeedDemoOrders, err)
		}
		config.SeedDemoOrders = seed
	}

	if v, ok := get(EnvLogLevel); ok {
		if err := config.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	return config, nil
}
