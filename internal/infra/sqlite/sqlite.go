package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	kind          TEXT    NOT NULL,
	prompt        TEXT    NOT NULL,
	options       TEXT    NOT NULL,
	correct_index INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id      TEXT    NOT NULL,
	display_name TEXT    NOT NULL,
	taken_at     INTEGER NOT NULL,
	score        INTEGER NOT NULL,
	total        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_user_id ON results (user_id);
`

// Open открывает базу SQLite и создает схему. path ":memory:" дает базу в памяти.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	const op = "sqlite.Open"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// Одно соединение: запись в SQLite сериализуется, а база в памяти живет в рамках соединения
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}
	return db, nil
}
