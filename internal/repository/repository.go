package repository

import (
	"context"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
)

// Error constants for the repository layer.
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate")
)

// RepositoryError helps distinguish repository errors.
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// AccountRepository defines the interface for interacting with account data.
type AccountRepository interface {
	// Create inserts a new account and returns its generated identifier.
	// Returns ErrDuplicate when the username is already taken; the existing
	// account is left untouched.
	Create(ctx context.Context, account *domain.Account) (string, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// EntryRepository defines the interface for interacting with workout log
// entries. The log is append-only: there are no update or delete operations.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.WorkoutEntry) (string, error)
	// GetByAccountID returns every entry for the account, with no ordering
	// guarantee. An account with no entries yields an empty slice, not an
	// error.
	GetByAccountID(ctx context.Context, accountID string) ([]domain.WorkoutEntry, error)
}
