package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/offboardhq/offboard-api/config"
	"github.com/offboardhq/offboard-api/internal/migrate"

	// Register the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectDB opens the shared PostgreSQL pool from the configured connection
// string. The pool is an explicitly owned resource: the caller closes it on
// shutdown. Pool limits and the connection-attempt timeout come from config.
func ConnectDB(cfg config.DBConfig, logger *slog.Logger) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn, err := withConnectTimeout(cfg.URL, cfg.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetConnMaxIdleTime(cfg.IdleTimeout)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		if closeErr := db.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close database connection: %w", closeErr))
		}
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	if logger != nil {
		u, parseErr := url.Parse(cfg.URL)
		if parseErr == nil && u.User != nil {
			u.User = url.User("*")
		}
		addr := cfg.URL
		if parseErr == nil {
			addr = u.Redacted()
		}
		logger.Info("database connected", "url", addr, "max_conns", cfg.MaxConns)
	}

	return db, nil
}

// withConnectTimeout adds connect_timeout to the DSN unless already present.
func withConnectTimeout(rawURL string, timeout time.Duration) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	if q.Get("connect_timeout") == "" {
		secs := int(timeout / time.Second)
		if secs < 1 {
			secs = 1
		}
		q.Set("connect_timeout", strconv.Itoa(secs))
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// ConnectRedis establishes a connection to Redis for the redis session backend.
//
//nolint:ireturn // returning redis.UniversalClient keeps client selection flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.URI,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.URI)
	}

	return client, nil
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := migrate.Run(ctx, db, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if logger != nil {
		logger.InfoContext(ctx, "database migrations completed")
	}

	return nil
}
