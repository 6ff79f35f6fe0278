package app

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS questions (
	id            BIGSERIAL PRIMARY KEY,
	kind          TEXT        NOT NULL,
	prompt        TEXT        NOT NULL,
	options       TEXT[]      NOT NULL,
	correct_index INTEGER     NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS results (
	id           BIGSERIAL PRIMARY KEY,
	user_id      TEXT        NOT NULL,
	display_name TEXT        NOT NULL,
	taken_at     TIMESTAMPTZ NOT NULL,
	score        INTEGER     NOT NULL,
	total        INTEGER     NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_results_user_id ON results (user_id);

CREATE TABLE IF NOT EXISTS messages (
	message_key  TEXT PRIMARY KEY,
	message_text TEXT NOT NULL
);
`

// InitDatabase устанавливает подключение к базе данных и создает схему
func InitDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	if _, err := db.Exec(ctx, postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to create schema: %w", op, err)
	}

	logger.Info("database connected", zap.String("host", connConfig.ConnConfig.Host))
	return db, nil
}
