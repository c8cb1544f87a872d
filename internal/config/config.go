// Package config collects process configuration from the environment.
// The resulting Config is read-only after startup; nothing mutates it.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DBPath is the SQLite database file path.
	DBPath string
	// SecretKey signs session tokens. Override the default in any real
	// deployment.
	SecretKey string
	// TokenValidity is how long issued session tokens remain valid.
	TokenValidity time.Duration
	// FrontendOrigin is the single origin allowed by CORS.
	FrontendOrigin string
	// Env is "dev" or "prod"; prod marks the session cookie Secure.
	Env string
}

// FromEnv builds a Config from environment variables, falling back to
// development defaults.
func FromEnv() *Config {
	cfg := &Config{
		Addr:           ":8080",
		DBPath:         "./data/kakeibo.db",
		SecretKey:      "change_this",
		TokenValidity:  60 * time.Minute,
		FrontendOrigin: "http://localhost:3000",
		Env:            "dev",
	}

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("JWT_EXPIRE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.TokenValidity = time.Duration(minutes) * time.Minute
		}
	}
	if v := os.Getenv("FRONTEND_ORIGIN"); v != "" {
		cfg.FrontendOrigin = v
	}
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}

	return cfg
}

// SecureCookies reports whether session cookies should carry the Secure
// flag. Disabled only for local development over plain HTTP.
func (c *Config) SecureCookies() bool {
	return c.Env != "dev"
}
