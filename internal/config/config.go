package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName       = "TxEngine"
	defaultPort          = "8080"
	defaultLogLevel      = "info"
	defaultShutdownDelay = 10 * time.Second
)

// Config captures runtime configuration loaded from environment variables.
// The input file path itself arrives as a CLI argument, not here.
type Config struct {
	AppName        string
	LogLevel       string
	WorkerLimit    int
	Serve          bool
	Port           string
	ShutdownPeriod time.Duration
}

// Load reads configuration values from the environment.
func Load() (Config, error) {
	cfg := Config{
		AppName:        getEnv("APP_NAME", defaultAppName),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		Port:           getEnv("PORT", defaultPort),
		ShutdownPeriod: defaultShutdownDelay,
	}

	if v := os.Getenv("WORKER_LIMIT"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WORKER_LIMIT: %w", err)
		}
		if limit < 0 {
			return Config{}, fmt.Errorf("WORKER_LIMIT must not be negative, got %d", limit)
		}
		cfg.WorkerLimit = limit
	}

	if v := os.Getenv("SERVE"); v != "" {
		serve, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SERVE: %w", err)
		}
		cfg.Serve = serve
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownPeriod = d
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
