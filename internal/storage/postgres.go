package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// responseLimit caps the persisted response text. It applies at the
// storage boundary regardless of any cap applied when the reply was
// built.
const responseLimit = 4000

const createTableSQL = `
CREATE TABLE IF NOT EXISTS user_interactions (
  id SERIAL PRIMARY KEY,
  user_id BIGINT NOT NULL,
  username TEXT,
  query_text TEXT,
  response_text TEXT,
  language VARCHAR(10),
  created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
);`

const insertSQL = `INSERT INTO user_interactions (user_id, username, query_text, response_text, language)
VALUES ($1, $2, $3, $4, $5)`

// PostgresRecorder appends interactions to Postgres. Every operation
// opens and closes its own connection: logging is best-effort and off
// the reply path, so a pool buys nothing here.
type PostgresRecorder struct {
	dsn string
}

func NewPostgresRecorder(dsn string) *PostgresRecorder {
	return &PostgresRecorder{dsn: dsn}
}

// EnsureSchema creates the interaction table if it does not exist.
// Callers log the error and keep running; the bot serves chat traffic
// even with no database behind it.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	db, err := sql.Open("postgres", r.dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create user_interactions: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) RecordInteraction(ctx context.Context, ev Interaction) error {
	db, err := sql.Open("postgres", r.dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	resp := truncateResponse(ev.Response)
	if _, err := db.ExecContext(ctx, insertSQL, ev.UserID, ev.Username, ev.Query, resp, ev.Language); err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// truncateResponse cuts the response to responseLimit characters. It
// counts code points, not bytes, so Cyrillic text is never split
// mid-rune.
func truncateResponse(s string) string {
	r := []rune(s)
	if len(r) <= responseLimit {
		return s
	}
	return string(r[:responseLimit])
}
