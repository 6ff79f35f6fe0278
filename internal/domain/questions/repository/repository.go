package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Repository хранилище банка вопросов.
// Insert назначает следующий свободный ID; List возвращает вопросы в порядке добавления.
type Repository interface {
	Insert(ctx context.Context, q model.Question) (int64, error)
	GetByID(ctx context.Context, id int64) (model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	Count(ctx context.Context) (int, error)
}

func storageError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, model.ErrStorageFailure, err)
}
