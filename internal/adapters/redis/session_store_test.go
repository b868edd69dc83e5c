package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offboardhq/offboard-api/internal/data"
	"github.com/offboardhq/offboard-api/internal/domain/model"
	"github.com/offboardhq/offboard-api/internal/testutil"
)

func testSession(sid string, ttl time.Duration) model.Session {
	return model.Session{
		SID:       sid,
		Data:      json.RawMessage(`{"tenantId":"t1"}`),
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewSessionStoreWithPrefix(client, "test-session:")

	sess := testSession("sid-1", time.Hour)
	require.NoError(t, store.Save(ctx, sess))
	defer func() { _ = store.Delete(ctx, "sid-1") }()

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "sid-1", got.SID)
	assert.JSONEq(t, `{"tenantId":"t1"}`, string(got.Data))

	require.NoError(t, store.Delete(ctx, "sid-1"))
	_, err = store.Get(ctx, "sid-1")
	require.ErrorIs(t, err, data.ErrSessionNotFound)
}

func TestSessionStore_Save_RejectsInvalid(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewSessionStore(client)

	require.Error(t, store.Save(ctx, testSession("", time.Hour)))
	require.Error(t, store.Save(ctx, testSession("sid-1", -time.Minute)))
}

func TestSessionStore_Get_Missing(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewSessionStoreWithPrefix(client, "test-session:")

	_, err := store.Get(ctx, "never-saved")
	require.ErrorIs(t, err, data.ErrSessionNotFound)

	_, err = store.Get(ctx, "")
	require.ErrorIs(t, err, data.ErrSessionNotFound)
}

func TestSessionStore_TTLExpiry(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewSessionStoreWithPrefix(client, "test-session:")

	require.NoError(t, store.Save(ctx, testSession("short", 150*time.Millisecond)))
	time.Sleep(300 * time.Millisecond)

	_, err := store.Get(ctx, "short")
	require.ErrorIs(t, err, data.ErrSessionNotFound)
}

func TestSessionStore_DeleteMissing(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	store := NewSessionStore(client)

	require.NoError(t, store.Delete(ctx, "never-saved"))
	require.NoError(t, store.Delete(ctx, ""))
}
