package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sharmasaravanan/workout-tracker-app/internal/domain"
	"github.com/sharmasaravanan/workout-tracker-app/internal/repository"
)

// sqliteEntryRepository implements repository.EntryRepository on the logs
// table.
type sqliteEntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new workout entry repository backed by the
// given database handle.
func NewEntryRepository(db *sql.DB) repository.EntryRepository {
	return &sqliteEntryRepository{db: db}
}

// Create appends a new workout entry and returns its generated identifier.
func (r *sqliteEntryRepository) Create(ctx context.Context, entry *domain.WorkoutEntry) (string, error) {
	if entry.AccountID == "" {
		return "", errors.New("entry account id is required")
	}

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO logs (id, account_id, date, day_label, exercise, sets, reps, weight, rpe, comments, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.AccountID,
		entry.Date.Format(domain.DateLayout),
		entry.DayLabel,
		entry.Exercise,
		entry.Sets,
		entry.Reps,
		entry.Weight,
		entry.RPE,
		entry.Comments,
		entry.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", err
	}

	return entry.ID, nil
}

// GetByAccountID returns every entry belonging to the account. Ordering is
// left to the callers; an account with no entries yields an empty slice.
func (r *sqliteEntryRepository) GetByAccountID(ctx context.Context, accountID string) ([]domain.WorkoutEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, account_id, date, day_label, exercise, sets, reps, weight, rpe, comments, created_at
		 FROM logs WHERE account_id = ?`,
		accountID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.WorkoutEntry{}
	for rows.Next() {
		var e domain.WorkoutEntry
		var date, createdAt string

		err := rows.Scan(&e.ID, &e.AccountID, &date, &e.DayLabel, &e.Exercise,
			&e.Sets, &e.Reps, &e.Weight, &e.RPE, &e.Comments, &createdAt)
		if err != nil {
			return nil, err
		}
		e.Date, _ = time.Parse(domain.DateLayout, date)
		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
