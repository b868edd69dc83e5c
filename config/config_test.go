package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/offboardhq/offboard-api/internal/errors"
)

func TestAppConfig_Defaults(t *testing.T) {
	t.Setenv("DEV", "false")
	t.Setenv("NODE_ENV", "")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, 20, cfg.Postgres.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.Postgres.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Postgres.ConnectTimeout)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, SessionStorePostgres, cfg.Sessions.Store)
	assert.Equal(t, "user_sessions", cfg.Sessions.TableName)
	assert.Equal(t, 900*time.Second, cfg.Sessions.PruneInterval)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("DB_MAX_CONNS", "5")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_REDIS_URI", "redis.internal:6379")
	t.Setenv("HTTP_PORT", "9090")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.Postgres.URL)
	assert.Equal(t, 5, cfg.Postgres.MaxConns)
	assert.Equal(t, SessionStoreRedis, cfg.Sessions.Store)
	assert.Equal(t, "redis.internal:6379", cfg.Sessions.Redis.URI)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NoError(t, cfg.Validate())
}

func TestAppConfig_Validate_RequiresDBURL(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	cfg.Postgres.URL = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)
}

func TestDBConfig_Sanitize_Guardrails(t *testing.T) {
	t.Parallel()

	cfg := DBConfig{MaxConns: -1, IdleTimeout: -time.Second, ConnectTimeout: 0}
	cfg.Sanitize()
	assert.Equal(t, 20, cfg.MaxConns)
	assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestSessionConfig_Sanitize(t *testing.T) {
	t.Parallel()

	cfg := SessionConfig{Store: " Redis ", TableName: "  ", PruneInterval: 0}
	cfg.Sanitize()
	assert.Equal(t, SessionStoreRedis, cfg.Store)
	assert.Equal(t, "user_sessions", cfg.TableName)
	assert.Equal(t, 900*time.Second, cfg.PruneInterval)

	empty := SessionConfig{}
	empty.Sanitize()
	assert.Equal(t, SessionStorePostgres, empty.Store)
}

func TestSessionConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := SessionConfig{Store: SessionStorePostgres}
	require.NoError(t, valid.Validate())

	invalid := SessionConfig{Store: "memcached"}
	err := invalid.Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestHTTPConfig_Sanitize(t *testing.T) {
	t.Parallel()

	cfg := HTTPConfig{Port: -80, ReadTimeout: 0, WriteTimeout: -time.Second, ShutdownTimeout: 0}
	cfg.Sanitize()
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	cfg = HTTPConfig{Port: 70000}
	cfg.Sanitize()
	assert.Equal(t, 8080, cfg.Port)
}
