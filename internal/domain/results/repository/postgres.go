package repository

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository хранилище результатов в PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создает новый экземпляр PostgresRepository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append сохраняет результат
func (r *PostgresRepository) Append(ctx context.Context, res model.Result) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO results (user_id, display_name, taken_at, score, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, res.UserID, res.DisplayName, res.Timestamp, res.Score, res.Total).Scan(&id)
	if err != nil {
		return 0, storageError("failed to insert result", err)
	}
	return id, nil
}

// ListByUser получает результаты пользователя, старые первыми
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]model.Result, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, display_name, taken_at, score, total
		FROM results
		WHERE user_id = $1
		ORDER BY id
	`, userID)
	if err != nil {
		return nil, storageError("failed to query results", err)
	}
	return collectResults(rows)
}

// ListAll получает все результаты в порядке добавления
func (r *PostgresRepository) ListAll(ctx context.Context) ([]model.Result, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, display_name, taken_at, score, total
		FROM results
		ORDER BY id
	`)
	if err != nil {
		return nil, storageError("failed to query results", err)
	}
	return collectResults(rows)
}

func collectResults(rows pgx.Rows) ([]model.Result, error) {
	defer rows.Close()

	results := []model.Result{}
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.UserID, &res.DisplayName, &res.Timestamp, &res.Score, &res.Total); err != nil {
			return nil, storageError("failed to scan result", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to iterate over rows", err)
	}
	return results, nil
}
