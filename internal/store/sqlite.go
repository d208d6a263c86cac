// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening a private shared-cache in-memory SQLite database (foreign keys on).
//   - Applying migrations from the embedded assets FS (idempotent, recorded in _migrations).
//   - Saving rounds and reading history/summary back.
//
// The database lives only as long as the process; it is never written to a file.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/assets"
)

// memoryDSN names a shared-cache in-memory database. The name is unique per
// store so separate stores never see each other's rounds.
const memoryDSN = "file:numguess-%s?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=1"

type sqliteStore struct {
	db *sql.DB
	// keep pins one connection for the store's lifetime; a shared-cache
	// memory database is dropped when its last connection closes.
	keep *sql.Conn
}

// OpenSQLite opens an in-memory SQLite Store and applies migrations.
func OpenSQLite(ctx context.Context) (Store, error) {
	db, keep, err := openDB(ctx)
	if err != nil {
		return nil, err
	}
	st := &sqliteStore{db: db, keep: keep}
	if err := migrate(ctx, db); err != nil {
		_ = st.Close()
		return nil, err
	}
	return st, nil
}

// openDB opens the database and pins an idle connection that keeps it alive.
// Queries run on one other connection, so a discarded working connection is
// replaced by a new one that still sees the same data.
func openDB(ctx context.Context) (*sql.DB, *sql.Conn, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf(memoryDSN, NewID()))
	if err != nil {
		return nil, nil, err
	}
	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(0)

	keep, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("pin connection: %w", err)
	}
	if err := keep.PingContext(ctx); err != nil {
		_ = keep.Close()
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	return db, keep, nil
}

// migrate applies embedded SQL migrations.
//
//   - Uses a _migrations table to track applied files.
//   - Executes each file in lexical order inside its own transaction.
//   - Skips files already applied.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(assets.FS, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Debug().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *sqliteStore) Save(ctx context.Context, r RoundRecord) error {
	if r.ID == "" {
		return ErrMissingID
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO rounds
            (id, outcome, target, attempts, max_attempts, hints_enabled, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Outcome, r.Target, r.Attempts, r.MaxAttempts, r.HintsEnabled,
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	var se sqlite3.Error
	if errors.As(err, &se) && se.ExtendedCode == sqlite3.ErrConstraintUnique {
		return ErrDuplicateID
	}
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

func (s *sqliteStore) Recent(ctx context.Context, limit int) ([]RoundRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, outcome, target, attempts, max_attempts, hints_enabled, started_at, finished_at
        FROM rounds ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	return scanRounds(rows)
}

func (s *sqliteStore) Summary(ctx context.Context) (Summary, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, outcome, target, attempts, max_attempts, hints_enabled, started_at, finished_at
        FROM rounds ORDER BY seq ASC`)
	if err != nil {
		return Summary{}, fmt.Errorf("query rounds: %w", err)
	}
	rounds, err := scanRounds(rows)
	if err != nil {
		return Summary{}, err
	}
	return summarize(rounds), nil
}

func (s *sqliteStore) Close() error {
	_ = s.keep.Close()
	return s.db.Close()
}

// scanRounds converts result rows into records and closes rows.
func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()
	out := []RoundRecord{}
	for rows.Next() {
		var r RoundRecord
		var started, finished string
		if err := rows.Scan(&r.ID, &r.Outcome, &r.Target, &r.Attempts, &r.MaxAttempts,
			&r.HintsEnabled, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		var err error
		if r.StartedAt, err = parseTime(started); err != nil {
			return nil, fmt.Errorf("round %s started_at: %w", r.ID, err)
		}
		if r.FinishedAt, err = parseTime(finished); err != nil {
			return nil, fmt.Errorf("round %s finished_at: %w", r.ID, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// parseTime parses the RFC3339 timestamps written by Save.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
