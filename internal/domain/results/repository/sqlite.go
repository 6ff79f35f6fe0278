package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// SQLiteRepository хранилище результатов в SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository создает новый экземпляр SQLiteRepository
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, res model.Result) (int64, error) {
	out, err := r.db.ExecContext(ctx, `
		INSERT INTO results (user_id, display_name, taken_at, score, total)
		VALUES (?, ?, ?, ?, ?)
	`, res.UserID, res.DisplayName, res.Timestamp.Unix(), res.Score, res.Total)
	if err != nil {
		return 0, storageError("failed to insert result", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, storageError("failed to read result id", err)
	}
	return id, nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]model.Result, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, display_name, taken_at, score, total
		FROM results WHERE user_id = ? ORDER BY id
	`, userID)
	if err != nil {
		return nil, storageError("failed to query results", err)
	}
	return scanSQLiteResults(rows)
}

func (r *SQLiteRepository) ListAll(ctx context.Context) ([]model.Result, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, display_name, taken_at, score, total
		FROM results ORDER BY id
	`)
	if err != nil {
		return nil, storageError("failed to query results", err)
	}
	return scanSQLiteResults(rows)
}

func scanSQLiteResults(rows *sql.Rows) ([]model.Result, error) {
	defer rows.Close()

	results := []model.Result{}
	for rows.Next() {
		var (
			res     model.Result
			takenAt int64
		)
		if err := rows.Scan(&res.ID, &res.UserID, &res.DisplayName, &takenAt, &res.Score, &res.Total); err != nil {
			return nil, storageError("failed to scan result", err)
		}
		res.Timestamp = time.Unix(takenAt, 0)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to iterate over rows", err)
	}
	return results, nil
}
