package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository"
)

// sqliteAccountRepository implements repository.AccountRepository on the
// accounts table.
type sqliteAccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates a new account repository backed by the given
// database handle.
func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &sqliteAccountRepository{db: db}
}

// Create inserts a new account. Username uniqueness is enforced by the
// UNIQUE constraint; a violation surfaces as repository.ErrDuplicate and
// leaves the existing row untouched.
func (r *sqliteAccountRepository) Create(ctx context.Context, account *domain.Account) (string, error) {
	if account.Username == "" || account.PasswordDigest == "" {
		return "", errors.New("account username and password digest are required")
	}

	account.ID = uuid.NewString()
	account.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, username, password_digest, created_at) VALUES (?, ?, ?, ?)`,
		account.ID,
		account.Username,
		account.PasswordDigest,
		account.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", repository.ErrDuplicate
		}
		return "", err
	}

	return account.ID, nil
}

// GetByUsername retrieves an account by its username (case-sensitive match).
func (r *sqliteAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_digest, created_at FROM accounts WHERE username = ?`,
		username,
	)
	return scanAccount(row)
}

// GetByID retrieves an account by its identifier.
func (r *sqliteAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_digest, created_at FROM accounts WHERE id = ?`,
		id,
	)
	return scanAccount(row)
}

func scanAccount(row *sql.Row) (*domain.Account, error) {
	var account domain.Account
	var createdAt string

	err := row.Scan(&account.ID, &account.Username, &account.PasswordDigest, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	account.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return &account, nil
}

// isUniqueViolation detects a UNIQUE constraint failure. The driver exposes
// constraint errors only through the message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
