package config

import (
	"strings"
	"time"

	apperrors "github.com/offboardhq/offboard-api/internal/errors"
)

// SessionStoreKind selects the backing store for web sessions.
type SessionStoreKind string

const (
	SessionStorePostgres SessionStoreKind = "postgres"
	SessionStoreRedis    SessionStoreKind = "redis"
)

const defaultPruneInterval = 900 * time.Second

// SessionConfig contains session store configuration.
type SessionConfig struct {
	// Store selects the session backend: "postgres" (default) or "redis".
	Store SessionStoreKind `env:"STORE" envDefault:"postgres"`

	// TableName is the Postgres table holding sessions.
	TableName string `env:"TABLE" envDefault:"user_sessions"`

	// SchemaName optionally qualifies TableName.
	SchemaName string `env:"SCHEMA" envDefault:""`

	// PruneInterval is how often expired sessions are removed.
	PruneInterval time.Duration `env:"PRUNE_INTERVAL" envDefault:"900s"`

	// Redis connection settings, used when Store is "redis".
	Redis RedisConfig `envPrefix:"REDIS_"`
}

// RedisConfig contains Redis configuration for the redis session backend.
type RedisConfig struct {
	URI      string `env:"URI"      envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Sanitize applies guardrails to session settings.
func (c *SessionConfig) Sanitize() {
	c.Store = SessionStoreKind(strings.ToLower(strings.TrimSpace(string(c.Store))))
	if c.Store == "" {
		c.Store = SessionStorePostgres
	}
	if strings.TrimSpace(c.TableName) == "" {
		c.TableName = "user_sessions"
	}
	if c.PruneInterval <= 0 {
		c.PruneInterval = defaultPruneInterval
	}
}

// Validate rejects unknown store kinds.
func (c *SessionConfig) Validate() error {
	switch c.Store {
	case SessionStorePostgres, SessionStoreRedis:
		return nil
	default:
		return apperrors.Configurationf("unknown session store %q", c.Store)
	}
}
