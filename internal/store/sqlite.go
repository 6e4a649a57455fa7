// internal/store/sqlite.go
//
// SQLite implementation of the Store interface.
// Responsibilities:
//   - Opening an in-memory SQLite database with safe defaults (busy timeout, foreign keys).
//   - Applying the embedded migrations from assets/sql (idempotent, recorded in _migrations).
//   - Recording and listing penalties.
//
// Note: the database lives in memory and disappears with the process; the
// journal never outlives the game it describes.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/singe/assets"
)

const memoryDSN = ":memory:"

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens an in-memory database and applies the schema.
func NewSQLiteStore(ctx context.Context) (Store, error) {
	db, err := openDB(memoryDSN)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

/**
 * openDB opens a SQLite database.
 *
 * - Pins the pool to one connection: every connection to ":memory:" would
 *   otherwise see its own empty database.
 * - Configures busy timeout and enforces foreign keys.
 */
func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

/**
 * migrate applies the embedded SQL migrations.
 *
 * - Uses a _migrations table to track applied files.
 * - Executes each file in lexical order inside its own transaction.
 * - Skips if already applied.
 */
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	for _, m := range files {
		// Skip if already applied
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, m.Name).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", m.Name).Msg("already applied")
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("query _migrations: %w", err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, m.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", m.Name, err)
		}
		log.Debug().Str("migration", m.Name).Msg("applied")
	}
	return nil
}

// Record inserts one penalty row.
func (s *sqliteStore) Record(ctx context.Context, p Penalty) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO penalties
            (game_id, round, player, kind, outcome, buffer, word, quarters, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.GameID, p.Round, p.Player, p.Kind, p.Outcome, p.Buffer, p.Word, p.Quarters,
		p.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert penalty: %w", err)
	}
	return nil
}

// Penalties lists a game's rows ordered by round, then insertion.
func (s *sqliteStore) Penalties(ctx context.Context, gameID string) ([]Penalty, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT game_id, round, player, kind, outcome, buffer, word, quarters, created_at
        FROM penalties
        WHERE game_id=?
        ORDER BY round ASC, id ASC`, gameID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Penalty
	for rows.Next() {
		var (
			p  Penalty
			at string
		)
		if err := rows.Scan(&p.GameID, &p.Round, &p.Player, &p.Kind, &p.Outcome,
			&p.Buffer, &p.Word, &p.Quarters, &at); err != nil {
			return nil, err
		}
		if p.At, err = time.Parse(time.RFC3339Nano, at); err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", at, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *sqliteStore) Close() error { return s.db.Close() }
