package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// SQLiteRepository банк вопросов в SQLite (драйвер modernc.org/sqlite).
// Варианты ответа хранятся JSON-строкой.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository создает новый экземпляр SQLiteRepository
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, q model.Question) (int64, error) {
	options, err := json.Marshal(q.Options)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal options: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO questions (kind, prompt, options, correct_index, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, string(q.Kind), q.Prompt, string(options), q.CorrectIndex, time.Now().Unix())
	if err != nil {
		return 0, storageError("failed to insert question", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("failed to read question id", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (model.Question, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, kind, prompt, options, correct_index, created_at
		FROM questions WHERE id = ?
	`, id)
	q, err := scanSQLiteQuestion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Question{}, fmt.Errorf("question %d: %w", id, model.ErrNotFound)
		}
		return model.Question{}, storageError("failed to get question", err)
	}
	return q, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]model.Question, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, prompt, options, correct_index, created_at
		FROM questions ORDER BY id
	`)
	if err != nil {
		return nil, storageError("failed to query questions", err)
	}
	defer rows.Close()

	questions := []model.Question{}
	for rows.Next() {
		q, err := scanSQLiteQuestion(rows)
		if err != nil {
			return nil, storageError("failed to scan question", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("failed to iterate over rows", err)
	}
	return questions, nil
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, storageError("failed to count questions", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteQuestion(s rowScanner) (model.Question, error) {
	var (
		q         model.Question
		kind      string
		options   string
		createdAt int64
	)
	if err := s.Scan(&q.ID, &kind, &q.Prompt, &options, &q.CorrectIndex, &createdAt); err != nil {
		return model.Question{}, err
	}
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		return model.Question{}, err
	}
	q.Kind = model.QuestionKind(kind)
	q.CreatedAt = time.Unix(createdAt, 0)
	return q, nil
}
