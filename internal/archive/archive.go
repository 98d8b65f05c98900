// Package archive provides best-effort SQLite storage of finished games.
// It is a write-mostly ledger for later analysis; live sessions are never
// loaded back from it.
package archive

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/crisis-sim/internal/game"
)

// DB wraps a SQLite connection holding completed-game records.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS completed_games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL UNIQUE,
		player_name TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		choices TEXT NOT NULL,
		tier TEXT NOT NULL,
		percentage INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		finished_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_completed_finished_at ON completed_games(finished_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRecord stores one finished game. Saving the same session twice keeps
// the first record.
func (db *DB) SaveRecord(ctx context.Context, rec game.Record) error {
	_, err := db.conn.ExecContext(ctx, `INSERT OR IGNORE INTO completed_games
		(session_id, player_name, difficulty, choices, tier, percentage, outcome, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, rec.PlayerName, rec.Difficulty,
		strings.Join(rec.Choices, ""), rec.Tier, rec.Percentage, rec.Outcome,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert record %s: %w", rec.SessionID, err)
	}
	return nil
}

type storedRecord struct {
	SessionID  string `db:"session_id"`
	PlayerName string `db:"player_name"`
	Difficulty int    `db:"difficulty"`
	Choices    string `db:"choices"`
	Tier       string `db:"tier"`
	Percentage int    `db:"percentage"`
	Outcome    string `db:"outcome"`
}

// Recent returns the most recently finished games, newest first.
func (db *DB) Recent(ctx context.Context, limit int) ([]game.Record, error) {
	var rows []storedRecord
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT session_id, player_name, difficulty, choices, tier, percentage, outcome
		 FROM completed_games ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select recent: %w", err)
	}

	records := make([]game.Record, len(rows))
	for i, r := range rows {
		records[i] = game.Record{
			SessionID:  r.SessionID,
			PlayerName: r.PlayerName,
			Difficulty: r.Difficulty,
			Choices:    strings.Split(r.Choices, ""),
			Tier:       r.Tier,
			Percentage: r.Percentage,
			Outcome:    r.Outcome,
		}
	}
	return records, nil
}
