// Package pgsession provides the Postgres-backed session store for the web tier.
package pgsession

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data"
	"github.com/offboardhq/offboard-api/internal/domain/model"
)

const (
	defaultTableName     = "user_sessions"
	defaultPruneInterval = 900 * time.Second
	probeTimeout         = 10 * time.Second
)

// Options groups constructor parameters for Store.
type Options struct {
	// DB is the shared connection pool handle. The store does not own it and
	// never closes it.
	DB *sql.DB
	// TableName overrides the backing table name (default "user_sessions").
	TableName string
	// SchemaName optionally qualifies TableName.
	SchemaName string
	// PruneInterval is how often RunPruner removes expired rows (default 900s).
	PruneInterval time.Duration
	// Logger receives the startup probe result and lazy-init failures.
	Logger *slog.Logger
}

// Store persists web sessions in Postgres. The backing table is created
// lazily on first use; failures on that path are logged only, so callers
// relying on lazy initialization get no early signal (EnsureTable is the
// explicit initializer whose errors are returned).
type Store struct {
	db            *sql.DB
	table         string
	pruneInterval time.Duration
	logger        *slog.Logger

	mu         sync.Mutex
	tableReady bool
}

var (
	_ core.SessionStore  = (*Store)(nil)
	_ core.SessionPruner = (*Store)(nil)
)

// New creates a Postgres session store bound to the given pool and kicks off
// one async connectivity probe that logs success or failure without blocking
// or failing construction.
func New(opts Options) *Store {
	table := opts.TableName
	if table == "" {
		table = defaultTableName
	}
	qualified := pgx.Identifier{table}.Sanitize()
	if opts.SchemaName != "" {
		qualified = pgx.Identifier{opts.SchemaName, table}.Sanitize()
	}
	interval := opts.PruneInterval
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		db:            opts.DB,
		table:         qualified,
		pruneInterval: interval,
		logger:        logger.With("component", "pgsession"),
	}
	if s.db != nil {
		go s.probeConnectivity()
	}
	return s
}

// Save upserts a session row keyed by sid. Already-expired sessions are
// rejected rather than stored.
func (s *Store) Save(ctx context.Context, sess model.Session) error {
	if sess.SID == "" {
		return errors.New("session ID cannot be empty")
	}
	if sess.Expired(time.Now()) {
		return errors.New("session is expired")
	}
	s.lazyEnsureTable(ctx)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO `+s.table+` (sid, sess, expire)
		VALUES ($1, $2, $3)
		ON CONFLICT (sid) DO UPDATE SET sess = EXCLUDED.sess, expire = EXCLUDED.expire`,
		sess.SID, sess.Data, sess.ExpiresAt.UTC())
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get loads a session by sid. Expired rows are removed and reported as not
// found.
func (s *Store) Get(ctx context.Context, sid string) (model.Session, error) {
	if sid == "" {
		return model.Session{}, data.ErrSessionNotFound
	}
	s.lazyEnsureTable(ctx)

	var sess model.Session
	err := s.db.QueryRowContext(ctx, `
		SELECT sid, sess, expire FROM `+s.table+` WHERE sid = $1`, sid).
		Scan(&sess.SID, &sess.Data, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, data.ErrSessionNotFound
		}
		return model.Session{}, fmt.Errorf("get session: %w", err)
	}

	if sess.Expired(time.Now()) {
		if deleteErr := s.Delete(ctx, sid); deleteErr != nil {
			return model.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return model.Session{}, data.ErrSessionNotFound
	}
	return sess, nil
}

// Touch extends a session's expiry without rewriting its payload.
func (s *Store) Touch(ctx context.Context, sid string, expiresAt time.Time) error {
	if sid == "" {
		return data.ErrSessionNotFound
	}
	s.lazyEnsureTable(ctx)

	res, err := s.db.ExecContext(ctx,
		`UPDATE `+s.table+` SET expire = $2 WHERE sid = $1`, sid, expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if n, raErr := res.RowsAffected(); raErr == nil && n == 0 {
		return data.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session row. Deleting a missing sid is not an error.
func (s *Store) Delete(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	s.lazyEnsureTable(ctx)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE sid = $1`, sid); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Prune deletes expired session rows and returns how many were removed.
func (s *Store) Prune(ctx context.Context) (int64, error) {
	s.lazyEnsureTable(ctx)

	res, err := s.db.ExecContext(ctx, `DELETE FROM `+s.table+` WHERE expire < now()`)
	if err != nil {
		return 0, fmt.Errorf("prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune sessions rows affected: %w", err)
	}
	return n, nil
}

// RunPruner prunes on the configured interval until ctx ends.
func (s *Store) RunPruner(ctx context.Context) error {
	ticker := time.NewTicker(s.pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := s.Prune(ctx)
			if err != nil {
				s.logger.ErrorContext(ctx, "session prune failed", "error", err)
				continue
			}
			if n > 0 {
				s.logger.InfoContext(ctx, "pruned expired sessions", "count", n)
			}
		}
	}
}

// EnsureTable is the explicit idempotent initializer for the backing table
// (sid primary key, json payload, expiry timestamp plus an index on expire).
// Calling it is optional since the store self-initializes lazily, but unlike
// the lazy path its failures are returned to the caller.
func (s *Store) EnsureTable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureTableLocked(ctx)
}

func (s *Store) ensureTableLocked(ctx context.Context) error {
	if s.tableReady {
		return nil
	}
	stmt := `
		CREATE TABLE IF NOT EXISTS ` + s.table + ` (
			sid TEXT PRIMARY KEY,
			sess JSON NOT NULL,
			expire TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_user_sessions_expire ON ` + s.table + ` (expire)`
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure session table: %w", err)
	}
	s.tableReady = true
	return nil
}

// lazyEnsureTable self-initializes the table before first use, logging (not
// returning) failures. A later operation then surfaces the real storage error.
func (s *Store) lazyEnsureTable(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureTableLocked(ctx); err != nil {
		s.logger.ErrorContext(ctx, "session table initialization failed", "error", err)
	}
}

// probeConnectivity pings the pool once at startup and logs the result.
func (s *Store) probeConnectivity() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.ErrorContext(ctx, "session store connectivity check failed", "error", err)
		return
	}
	s.logger.InfoContext(ctx, "session store connected")
}
