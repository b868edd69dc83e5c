package config

import "time"

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	Host            string        `env:"HOST"             envDefault:""`
	Port            int           `env:"PORT"             envDefault:"8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP server settings.
func (c *HTTPConfig) Sanitize() {
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 8080
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = 15 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 30 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}
