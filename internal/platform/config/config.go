// Package config loads process-wide configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Store selection values for the repository adapters.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config carries everything the composition root needs to wire the server.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// Store selects the repository adapters: "memory" or "postgres".
	Store string

	// DatabaseDSN is the Postgres connection string, required when
	// Store is "postgres".
	DatabaseDSN string

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool

	// JWTSecret signs session tokens. Loaded once; never logged.
	JWTSecret string

	// SessionTTL bounds session token lifetime. Defaults to 7 days.
	SessionTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		Store:         getenv("STORE", StoreMemory),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		RunMigrations: os.Getenv("RUN_MIGRATIONS") == "true",
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionTTL:    7 * 24 * time.Hour,
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL %q: %w", v, err)
		}
		cfg.SessionTTL = ttl
	}

	if cfg.Store != StoreMemory && cfg.Store != StorePostgres {
		return nil, fmt.Errorf("invalid STORE %q: must be %q or %q", cfg.Store, StoreMemory, StorePostgres)
	}
	if cfg.Store == StorePostgres && cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required when STORE=%s", StorePostgres)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
