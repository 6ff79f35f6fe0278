package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository источник текстов сообщений бота
type Repository interface {
	GetMessageByKey(ctx context.Context, messageKey string) (string, error)
}

// MessageRepository тексты из таблицы messages в PostgreSQL
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository создает новый экземпляр MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetMessageByKey возвращает текст сообщения по ключу
func (r *MessageRepository) GetMessageByKey(ctx context.Context, messageKey string) (string, error) {
	var messageText string
	err := r.db.QueryRow(ctx, "SELECT message_text FROM messages WHERE message_key=$1", messageKey).
		Scan(&messageText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("message with key %s: %w", messageKey, model.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get message: %w: %w", model.ErrStorageFailure, err)
	}
	return messageText, nil
}
