package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - database.go: Database configuration
//   - sessions.go: Session store configuration
//   - http.go: HTTP server configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.)
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Database configuration
	Postgres DBConfig `envPrefix:"DB_"`

	// Session store configuration
	Sessions SessionConfig `envPrefix:"SESSION_"`

	// HTTP server configuration
	HTTP HTTPConfig `envPrefix:"HTTP_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Postgres.Sanitize()
	c.Sessions.Sanitize()
	c.HTTP.Sanitize()

	// Check NODE_ENV for dev mode
	c.detectDevMode()
}

// Validate reports fatal configuration problems. A missing database
// connection string prevents startup entirely.
func (c *AppConfig) Validate() error {
	if err := c.Postgres.Validate(); err != nil {
		return err
	}
	return c.Sessions.Validate()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// This is called by Sanitize() to ensure IsDev is set correctly.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
