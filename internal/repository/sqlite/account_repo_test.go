package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAccountCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &domain.Account{Username: "alice", PasswordDigest: "digest-1"}
	id, err := repo.Create(ctx, account)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "digest-1", got.PasswordDigest)
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, got.Username, byID.Username)
}

func TestAccountDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	firstID, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordDigest: "digest-1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.Account{Username: "alice", PasswordDigest: "digest-2"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	// The original account must be untouched by the failed insert.
	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID)
	assert.Equal(t, "digest-1", got.PasswordDigest)
}

func TestAccountUsernameCaseSensitive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &domain.Account{Username: "alice", PasswordDigest: "digest-1"})
	require.NoError(t, err)

	// A different casing is a different username.
	_, err = repo.Create(ctx, &domain.Account{Username: "Alice", PasswordDigest: "digest-2"})
	require.NoError(t, err)

	_, err = repo.GetByUsername(ctx, "ALICE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAccountNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	_, err := repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
