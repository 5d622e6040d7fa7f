// Package sqlite provides a SQLite implementation of the DailyCache interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/infrastructure/config"
)

// Repository implements ports.DailyCache using SQLite.
//
// The snapshot holds at most one date. Concurrent processes overwrite each
// other last-writer-wins without locking; since the assignment is a pure
// function of date and catalog, racing writers store identical rows.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite daily cache repository.
func NewRepository(cfg config.CacheConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write behavior
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{db: db, path: cfg.Path}, nil
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS daily_predictions (
		sign TEXT PRIMARY KEY,
		day TEXT NOT NULL,
		prediction TEXT NOT NULL
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load reads the stored assignment. Returns (nil, nil) when the snapshot
// is empty. Rows from a different day than the first row (possible only
// after an interrupted write) are discarded.
func (r *Repository) Load(ctx context.Context) (*entities.DailyAssignment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT sign, day, prediction FROM daily_predictions`)
	if err != nil {
		return nil, fmt.Errorf("querying daily predictions: %w", err)
	}
	defer rows.Close()

	var assignment *entities.DailyAssignment
	for rows.Next() {
		var signName, day, prediction string
		if err := rows.Scan(&signName, &day, &prediction); err != nil {
			return nil, fmt.Errorf("scanning daily prediction: %w", err)
		}

		if assignment == nil {
			assignment = entities.NewDailyAssignment(day)
		}
		if day != assignment.Date {
			continue
		}
		sign, ok := entities.ParseSign(signName)
		if !ok {
			continue
		}
		assignment.Predictions[sign] = prediction
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading daily predictions: %w", err)
	}

	return assignment, nil
}

// Save stores the assignment, replacing any previously stored date
// wholesale in one transaction.
func (r *Repository) Save(ctx context.Context, assignment *entities.DailyAssignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_predictions`); err != nil {
		return fmt.Errorf("clearing daily predictions: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO daily_predictions (sign, day, prediction) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for sign, prediction := range assignment.Predictions {
		if _, err := stmt.ExecContext(ctx, sign.String(), assignment.Date, prediction); err != nil {
			return fmt.Errorf("inserting prediction for %s: %w", sign, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing daily predictions: %w", err)
	}
	return nil
}
