package stores

import (
	"context"
	"testing"
	"time"

	"request-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyStore_CreateUser_Duplicate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	ctx := context.Background()

	user, err := keyStore.CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "alice", user.Username)

	_, err = keyStore.CreateUser(ctx, "alice", "hash-2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestKeyStore_FindUserByUsername(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	ctx := context.Background()

	created, err := keyStore.CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)

	found, err := keyStore.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "hash-1", found.HashedPassword)

	_, err = keyStore.FindUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestKeyStore_CreateAndFindKey(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	ctx := context.Background()

	user, err := keyStore.CreateUser(ctx, "alice", "hash-1")
	require.NoError(t, err)

	created, err := keyStore.CreateKey(ctx, "key-alice", &user.ID)
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	found, err := keyStore.FindByKey(ctx, "key-alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "key-alice", found.Key)
	require.NotNil(t, found.UserID)
	assert.Equal(t, user.ID, *found.UserID)

	_, err = keyStore.FindByKey(ctx, "unknown")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKeyStore_CreateKey_WithoutOwner(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	ctx := context.Background()

	created, err := keyStore.CreateKey(ctx, "orphan-key", nil)
	require.NoError(t, err)

	found, err := keyStore.FindByKey(ctx, "orphan-key")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Nil(t, found.UserID)
}

func TestKeyStore_DeleteKey_CascadesToLogs(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	logStore := NewLogStore(db)
	ctx := context.Background()

	keyID := createTestKey(t, db, "alice", "key-alice")
	_, err := logStore.Insert(ctx, &models.LogRecord{
		CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Method:      "GET",
		Endpoint:    "/users",
		ProcessTime: 1.5,
		StatusCode:  200,
		APIKeyID:    keyID,
	})
	require.NoError(t, err)

	require.NoError(t, keyStore.DeleteKey(ctx, keyID))

	records, err := logStore.List(ctx, keyID, nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, keyStore.DeleteKey(ctx, keyID), ErrKeyNotFound)
}

func TestKeyStore_DeleteKey_CascadesOnFreshConnection(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	keyStore := NewKeyStore(db)
	logStore := NewLogStore(db)
	ctx := context.Background()

	keyID := createTestKey(t, db, "alice", "key-alice")
	_, err := logStore.Insert(ctx, &models.LogRecord{
		CreatedAt:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		Method:      "GET",
		Endpoint:    "/users",
		ProcessTime: 1.5,
		StatusCode:  200,
		APIKeyID:    keyID,
	})
	require.NoError(t, err)

	// Hold the idle connection that ran the schema and the inserts, so every
	// statement below runs on a freshly opened pool connection. The cascade
	// must hold on that connection too.
	pinned, err := db.Conn(ctx)
	require.NoError(t, err)
	defer func() { _ = pinned.Close() }()

	var fkEnabled int
	require.NoError(t, db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fkEnabled))
	assert.Equal(t, 1, fkEnabled, "foreign keys must be enabled on every pool connection")

	require.NoError(t, keyStore.DeleteKey(ctx, keyID))

	var orphaned int
	require.NoError(t, db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM api_logs WHERE api_key_id = ?", keyID).Scan(&orphaned))
	assert.Zero(t, orphaned, "key deletion cascades to owned log records")
}
