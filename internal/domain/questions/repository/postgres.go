package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository банк вопросов в PostgreSQL
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создает новый экземпляр PostgresRepository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert добавляет вопрос; ID выдает последовательность BIGSERIAL и никогда не переиспользуется
func (r *PostgresRepository) Insert(ctx context.Context, q model.Question) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO questions (kind, prompt, options, correct_index, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id
	`, string(q.Kind), q.Prompt, q.Options, q.CorrectIndex).Scan(&id)
	if err != nil {
		return 0, storageError("failed to insert question", err)
	}
	return id, nil
}

// GetByID получает вопрос по ID
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (model.Question, error) {
	var (
		q    model.Question
		kind string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, kind, prompt, options, correct_index, created_at
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &kind, &q.Prompt, &q.Options, &q.CorrectIndex, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Question{}, fmt.Errorf("question %d: %w", id, model.ErrNotFound)
		}
		return model.Question{}, storageError("failed to get question", err)
	}
	q.Kind = model.QuestionKind(kind)
	return q, nil
}

// List получает все вопросы в порядке добавления
func (r *PostgresRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, kind, prompt, options, correct_index, created_at
		FROM questions
		ORDER BY id
	`)
	if err != nil {
		return nil, storageError("failed to query questions", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		var (
			q    model.Question
			kind string
		)
		if err := rows.Scan(&q.ID, &kind, &q.Prompt, &q.Options, &q.CorrectIndex, &q.CreatedAt); err != nil {
			return nil, storageError("failed to scan question", err)
		}
		q.Kind = model.QuestionKind(kind)
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("failed to iterate over rows", err)
	}

	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, storageError("failed to count questions", err)
	}
	return count, nil
}
