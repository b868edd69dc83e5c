package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/offboardhq/offboard-api/internal/core"
	"github.com/offboardhq/offboard-api/internal/data/database"
	"github.com/offboardhq/offboard-api/internal/data/pgxutil"
	"github.com/offboardhq/offboard-api/internal/domain/model"
	apperrors "github.com/offboardhq/offboard-api/internal/errors"
)

// OffboardingRepo provides database operations for scheduled offboardings.
// Every query carries the ownership filter
// (tenant_id = tenant) AND (session_id = session OR created_by = session),
// so a row belonging to another tenant or session behaves as if it does not
// exist. Writes use the filtered statement's affected-row count as the single
// source of truth; there is no read-before-write existence check.
type OffboardingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider

	mu         sync.Mutex
	tableReady bool
}

var _ core.OffboardingRepository = (*OffboardingRepo)(nil)

// NewOffboardingRepo creates a new OffboardingRepo with real time provider.
func NewOffboardingRepo(db *sql.DB) *OffboardingRepo {
	return &OffboardingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewOffboardingRepoWithTimeProvider creates a new OffboardingRepo with a custom time provider (useful for tests).
func NewOffboardingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *OffboardingRepo {
	return &OffboardingRepo{DB: db, timeProvider: tp}
}

// List retrieves all offboardings visible to the caller, ordered ascending by
// scheduled_date_time. No matching rows is an empty slice, never an error.
func (r *OffboardingRepo) List(
	ctx context.Context,
	id core.Identity,
) ([]*model.ScheduledOffboarding, error) {
	return r.ListWithOptions(ctx, id, model.OffboardingListOptions{})
}

// ListWithOptions retrieves offboardings with an optional status filter and paging.
func (r *OffboardingRepo) ListWithOptions(
	ctx context.Context,
	id core.Identity,
	opts model.OffboardingListOptions,
) ([]*model.ScheduledOffboarding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	query, args := database.BuildListQuery(r.buildListQueryOptions(id, opts))

	var rowsOut []model.ScheduledOffboarding
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.ScheduledOffboarding])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to list offboardings: %w", err)
	}

	res := make([]*model.ScheduledOffboarding, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// Get retrieves a single offboarding by id under the caller's ownership
// filter. Returns ErrOffboardingNotFound when no visible row matches.
func (r *OffboardingRepo) Get(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	var out model.ScheduledOffboarding
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offboardingGetQuery, recordID, id.TenantID, id.SessionID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ScheduledOffboarding])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOffboardingNotFound
		}
		return nil, fmt.Errorf("failed to get offboarding: %w", err)
	}
	return &out, nil
}

// Create schedules a new offboarding. The id is generated from the creation
// time plus a random suffix; scheduled_date_time is derived from its parts
// when absent, template defaults to "standard", the notify flags default to
// true unless explicitly false, and created_by is fixed to the creating
// session id.
func (r *OffboardingRepo) Create(
	ctx context.Context,
	req *model.CreateOffboardingRequest,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperrors.Validation("create offboarding request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.ScheduledOffboarding
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO scheduled_offboardings (
				id, tenant_id, session_id, created_by,
				user_id, user_display_name, user_email,
				scheduled_date, scheduled_time, scheduled_date_time,
				template, status, manager_email, notify_manager, notify_user,
				custom_message, created_at, executed_at, updated_at
			) VALUES (
				$1, $2, $3, $3,
				$4, $5, $6,
				$7, $8, $9,
				$10, $11, $12, $13, $14,
				$15, $16, NULL, $16
			) RETURNING `+offboardingColumnList,
			r.generateID(now),
			id.TenantID,
			id.SessionID,
			req.UserID,
			req.UserDisplayName,
			req.UserEmail,
			req.ScheduledDate,
			req.ScheduledTime,
			req.ScheduledDateTime,
			req.Template,
			model.OffboardingScheduled,
			req.ManagerEmail,
			req.NotifyManagerOrDefault(),
			req.NotifyUserOrDefault(),
			req.CustomMessage,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ScheduledOffboarding])
		return err
	}); err != nil {
		return nil, fmt.Errorf("failed to create offboarding: %w", err)
	}
	return &out, nil
}

// Update mutates the allow-listed fields of an offboarding. The allow-list is
// the typed field set of UpdateOffboardingRequest; status, the subject user,
// and ownership keys cannot be changed here. updated_at is always bumped.
// Returns ErrOffboardingNotFound when no visible row matches the filtered
// UPDATE; there is no separate pre-check to race against.
func (r *OffboardingRepo) Update(
	ctx context.Context,
	recordID string,
	req model.UpdateOffboardingRequest,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	var out model.ScheduledOffboarding
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		setClause, args := r.buildUpdateClause(req)
		args = append(args, recordID, id.TenantID, id.SessionID)
		n := len(args)
		query := "UPDATE scheduled_offboardings SET " + setClause +
			" WHERE id = $" + strconv.Itoa(n-2) +
			" AND tenant_id = $" + strconv.Itoa(n-1) +
			" AND (session_id = $" + strconv.Itoa(n) + " OR created_by = $" + strconv.Itoa(n) + ")" +
			" RETURNING " + offboardingColumnList
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		var e error
		out, e = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ScheduledOffboarding])
		return e
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOffboardingNotFound
		}
		return nil, fmt.Errorf("failed to update offboarding: %w", err)
	}
	return &out, nil
}

// Remove deletes an offboarding under the caller's ownership filter,
// regardless of its status. Returns whether a row was deleted.
func (r *OffboardingRepo) Remove(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return false, err
	}

	var rows int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `
			DELETE FROM scheduled_offboardings
			WHERE id = $1 AND tenant_id = $2 AND (session_id = $3 OR created_by = $3)`,
			recordID, id.TenantID, id.SessionID)
		if err != nil {
			return err
		}
		rows = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete offboarding: %w", err)
	}
	return rows > 0, nil
}

// Execute marks an offboarding completed and stamps executed_at with the call
// time. Re-executing an already completed record is allowed and simply
// re-stamps executed_at. Returns ErrOffboardingNotFound when no visible row
// matches.
func (r *OffboardingRepo) Execute(
	ctx context.Context,
	recordID string,
	id core.Identity,
) (*model.ScheduledOffboarding, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	now := r.timeProvider.Now().UTC()
	var out model.ScheduledOffboarding
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE scheduled_offboardings
			SET status = $1, executed_at = $2, updated_at = $2
			WHERE id = $3 AND tenant_id = $4 AND (session_id = $5 OR created_by = $5)
			RETURNING `+offboardingColumnList,
			model.OffboardingCompleted, now, recordID, id.TenantID, id.SessionID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.ScheduledOffboarding])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOffboardingNotFound
		}
		return nil, fmt.Errorf("failed to execute offboarding: %w", err)
	}
	return &out, nil
}

// --- helpers ---

// offboardingColumnList is the standard column list for RETURNING/SELECT.
const offboardingColumnList = `id, tenant_id, session_id, created_by,
		user_id, user_display_name, user_email,
		scheduled_date, scheduled_time, scheduled_date_time,
		template, status, manager_email, notify_manager, notify_user,
		custom_message, created_at, executed_at, updated_at`

const offboardingGetQuery = `
	SELECT ` + offboardingColumnList + `
	FROM scheduled_offboardings
	WHERE id = $1 AND tenant_id = $2 AND (session_id = $3 OR created_by = $3)`

// offboardingColumns returns the column list for dynamic list queries.
func offboardingColumns() []string {
	return []string{
		"id",
		"tenant_id",
		"session_id",
		"created_by",
		"user_id",
		"user_display_name",
		"user_email",
		"scheduled_date",
		"scheduled_time",
		"scheduled_date_time",
		"template",
		"status",
		"manager_email",
		"notify_manager",
		"notify_user",
		"custom_message",
		"created_at",
		"executed_at",
		"updated_at",
	}
}

// generateID builds a time-based identifier with a random suffix. It is not
// guaranteed globally unique across concurrent creations in the same
// millisecond, only practically unlikely to collide.
func (r *OffboardingRepo) generateID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}

// buildListQueryOptions assembles the ownership-filtered list query.
func (r *OffboardingRepo) buildListQueryOptions(
	id core.Identity,
	opts model.OffboardingListOptions,
) *database.ListQueryOptions {
	queryOpts := []database.ListQueryOption{
		database.WithColumns(offboardingColumns()...),
		database.WithCondition(database.WhereCond("tenant_id", database.Equal, id.TenantID)),
		database.WithCondition(
			database.WhereRawCond("(session_id = $1 OR created_by = $1)", id.SessionID),
		),
		database.WithOrderBy("scheduled_date_time", "ASC"),
	}

	if opts.Status != nil {
		queryOpts = append(queryOpts, database.WithCondition(
			database.WhereCond("status", database.Equal, *opts.Status),
		))
	}
	if opts.Limit > 0 {
		queryOpts = append(queryOpts, database.WithLimit(opts.Limit))
	}
	if opts.Offset > 0 {
		queryOpts = append(queryOpts, database.WithOffset(opts.Offset))
	}

	return database.NewListQueryOptions("scheduled_offboardings", queryOpts...)
}

// buildUpdateClause builds the SQL SET clause and args for the allow-listed
// fields. updated_at is always included. Callers must reject requests with no
// fields set before calling this.
func (r *OffboardingRepo) buildUpdateClause(req model.UpdateOffboardingRequest) (string, []any) {
	setParts := make([]string, 0, 9)
	args := make([]any, 0, 9)
	nextIdx := func() int { return len(args) + 1 }

	if req.ScheduledDate != nil {
		setParts = append(setParts, fmt.Sprintf("scheduled_date = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.ScheduledDate))
	}
	if req.ScheduledTime != nil {
		setParts = append(setParts, fmt.Sprintf("scheduled_time = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.ScheduledTime))
	}
	if req.ScheduledDateTime != nil {
		setParts = append(setParts, fmt.Sprintf("scheduled_date_time = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.ScheduledDateTime))
	}
	if req.Template != nil {
		setParts = append(setParts, fmt.Sprintf("template = $%d", nextIdx()))
		args = append(args, strings.TrimSpace(*req.Template))
	}
	if req.ManagerEmail != nil {
		setParts = append(setParts, fmt.Sprintf("manager_email = $%d", nextIdx()))
		args = append(args, *req.ManagerEmail)
	}
	if req.NotifyManager != nil {
		setParts = append(setParts, fmt.Sprintf("notify_manager = $%d", nextIdx()))
		args = append(args, *req.NotifyManager)
	}
	if req.NotifyUser != nil {
		setParts = append(setParts, fmt.Sprintf("notify_user = $%d", nextIdx()))
		args = append(args, *req.NotifyUser)
	}
	if req.CustomMessage != nil {
		setParts = append(setParts, fmt.Sprintf("custom_message = $%d", nextIdx()))
		args = append(args, *req.CustomMessage)
	}

	setParts = append(setParts, fmt.Sprintf("updated_at = $%d", nextIdx()))
	args = append(args, r.timeProvider.Now().UTC())

	return strings.Join(setParts, ", "), args
}

// ensureTable lazily creates the backing table before the first query. The
// table is also owned by a migration; this path keeps the repo usable against
// an un-migrated database. Failures are returned, not cached, so a transient
// error does not poison later calls.
func (r *OffboardingRepo) ensureTable(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tableReady {
		return nil
	}
	if _, err := r.DB.ExecContext(ctx, createOffboardingsTableSQL); err != nil {
		return fmt.Errorf("ensure scheduled_offboardings table: %w", err)
	}
	r.tableReady = true
	return nil
}

const createOffboardingsTableSQL = `
	CREATE TABLE IF NOT EXISTS scheduled_offboardings (
		id TEXT PRIMARY KEY,
		tenant_id TEXT NOT NULL,
		session_id TEXT NOT NULL,
		created_by TEXT NOT NULL,
		user_id TEXT NOT NULL DEFAULT '',
		user_display_name TEXT NOT NULL DEFAULT '',
		user_email TEXT NOT NULL DEFAULT '',
		scheduled_date TEXT NOT NULL,
		scheduled_time TEXT NOT NULL,
		scheduled_date_time TEXT NOT NULL,
		template TEXT NOT NULL DEFAULT 'standard',
		status TEXT NOT NULL DEFAULT 'scheduled',
		manager_email TEXT,
		notify_manager BOOLEAN NOT NULL DEFAULT TRUE,
		notify_user BOOLEAN NOT NULL DEFAULT TRUE,
		custom_message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		executed_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_tenant_id ON scheduled_offboardings (tenant_id);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_session_id ON scheduled_offboardings (session_id);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_status ON scheduled_offboardings (status);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_sdt ON scheduled_offboardings (scheduled_date_time);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_user_id ON scheduled_offboardings (user_id);
	CREATE INDEX IF NOT EXISTS idx_scheduled_offboardings_tenant_status ON scheduled_offboardings (tenant_id, status)`
