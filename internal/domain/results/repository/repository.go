package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Repository хранилище результатов. Записи только добавляются.
type Repository interface {
	Append(ctx context.Context, r model.Result) (int64, error)
	ListByUser(ctx context.Context, userID string) ([]model.Result, error)
	ListAll(ctx context.Context) ([]model.Result, error)
}

func storageError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, model.ErrStorageFailure, err)
}
