package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go driver, no CGO required
)

// Open opens (or creates) the store file at the given path, configures the
// connection and ensures the schema exists. All persistent state of the
// application lives in this single file.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return db, nil
}

func initSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS accounts (
			id              TEXT PRIMARY KEY,
			username        TEXT NOT NULL UNIQUE,
			password_digest TEXT NOT NULL,
			created_at      TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS logs (
			id         TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES accounts(id),
			date       TEXT NOT NULL,
			day_label  TEXT NOT NULL,
			exercise   TEXT NOT NULL,
			sets       INTEGER NOT NULL,
			reps       INTEGER NOT NULL,
			weight     REAL NOT NULL,
			rpe        REAL NOT NULL,
			comments   TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_logs_account_id ON logs(account_id);
	`
	if _, err := db.Exec(schema); err != nil {
		return err
	}
	return nil
}
