package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery_Basic(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithColumns("id", "tenant_id", "status"),
		WithCondition(WhereCond("tenant_id", Equal, "t1")),
		WithOrderBy("scheduled_date_time", "ASC"),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT "id", "tenant_id", "status" FROM "scheduled_offboardings"`+
			` WHERE "tenant_id" = $1 ORDER BY "scheduled_date_time" ASC`,
		query)
	assert.Equal(t, []any{"t1"}, args)
}

func TestBuildListQuery_RawConditionRenumbersPlaceholders(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithColumns("id"),
		WithCondition(WhereCond("tenant_id", Equal, "t1")),
		WithCondition(WhereRawCond("(session_id = $1 OR created_by = $1)", "s1")),
	)

	query, args := BuildListQuery(opts)

	// The raw fragment's $1 is renumbered to follow the standard condition,
	// and the repeated placeholder binds the parameter once.
	assert.Equal(t,
		`SELECT "id" FROM "scheduled_offboardings"`+
			` WHERE "tenant_id" = $1 AND (session_id = $2 OR created_by = $2)`,
		query)
	assert.Equal(t, []any{"t1", "s1"}, args)
}

func TestBuildListQuery_RawConditionMultipleParams(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithCondition(WhereCond("tenant_id", Equal, "t1")),
		WithCondition(WhereRawCond("(scheduled_date >= $1 AND scheduled_date < $2)", "2024-06-01", "2024-07-01")),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "scheduled_offboardings"`+
			` WHERE "tenant_id" = $1 AND (scheduled_date >= $2 AND scheduled_date < $3)`,
		query)
	assert.Equal(t, []any{"t1", "2024-06-01", "2024-07-01"}, args)
}

func TestBuildListQuery_LimitOffsetAfterConditions(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithCondition(WhereCond("status", Equal, "scheduled")),
		WithOrderBy("scheduled_date_time", "asc"),
		WithLimit(25),
		WithOffset(50),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "scheduled_offboardings" WHERE "status" = $1`+
			` ORDER BY "scheduled_date_time" ASC LIMIT $2 OFFSET $3`,
		query)
	assert.Equal(t, []any{"scheduled", 25, 50}, args)
}

func TestBuildListQuery_InCondition(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithCondition(WhereCond("status", In, []string{"scheduled", "completed"})),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t,
		`SELECT * FROM "scheduled_offboardings" WHERE "status" IN ($1, $2)`,
		query)
	assert.Equal(t, []any{"scheduled", "completed"}, args)
}

func TestBuildListQuery_CountOnly(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithCountOnly(),
		WithCondition(WhereCond("tenant_id", Equal, "t1")),
		// Order/limit are ignored for counts.
		WithOrderBy("scheduled_date_time", "ASC"),
		WithLimit(10),
	)

	query, args := BuildListQuery(opts)

	assert.Equal(t, `SELECT COUNT(*) FROM "scheduled_offboardings" WHERE "tenant_id" = $1`, query)
	assert.Equal(t, []any{"t1"}, args)
}

func TestBuildListQuery_SanitizesIdentifiers(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions(`off"boardings`,
		WithColumns(`sneaky"col`),
		WithCondition(WhereCond(`bad"field`, Equal, 1)),
		WithOrderBy(`evil"order`, "ASC; DROP TABLE x"),
	)

	query, _ := BuildListQuery(opts)

	// Embedded quotes are escaped, and a bogus direction is dropped.
	assert.Contains(t, query, `"sneaky""col"`)
	assert.Contains(t, query, `"off""boardings"`)
	assert.Contains(t, query, `"bad""field" = $1`)
	assert.Contains(t, query, `ORDER BY "evil""order"`)
	assert.NotContains(t, query, "DROP TABLE")
}

func TestBuildListQuery_QualifiedColumn(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithColumns("scheduled_offboardings.id"),
	)

	query, _ := BuildListQuery(opts)
	assert.Contains(t, query, `"scheduled_offboardings"."id"`)
}

func TestBuildListQuery_NilAndEmpty(t *testing.T) {
	t.Parallel()

	query, args := BuildListQuery(nil)
	assert.Empty(t, query)
	assert.Nil(t, args)

	query, args = BuildListQuery(NewListQueryOptions("t"))
	assert.Equal(t, `SELECT * FROM "t"`, query)
	assert.Empty(t, args)
}

func TestWhereCond_PanicsOnCustom(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		WhereCond("field", Custom, "value")
	})
}

func TestWhereRawCond_NoParams(t *testing.T) {
	t.Parallel()

	opts := NewListQueryOptions("scheduled_offboardings",
		WithConditions(WhereRawCond("executed_at IS NULL")),
	)

	query, args := BuildListQuery(opts)
	assert.Equal(t, `SELECT * FROM "scheduled_offboardings" WHERE executed_at IS NULL`, query)
	assert.Empty(t, args)
}
