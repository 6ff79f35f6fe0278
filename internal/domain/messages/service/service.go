package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"go.uber.org/zap"
)

// MessageService тексты бота: сначала источник (YAML или БД), затем встроенные значения
type MessageService struct {
	messageRepo repository.Repository
	logger      *zap.Logger
}

// NewMessageService создает новый экземпляр MessageService
func NewMessageService(messageRepo repository.Repository, logger *zap.Logger) *MessageService {
	return &MessageService{messageRepo: messageRepo, logger: logger}
}

// Text возвращает сообщение по ключу. Неизвестный ключ возвращается как есть.
func (s *MessageService) Text(ctx context.Context, messageKey string) string {
	if s.messageRepo != nil {
		text, err := s.messageRepo.GetMessageByKey(ctx, messageKey)
		if err == nil {
			return text
		}
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Warn("failed to get message", zap.String("key", messageKey), zap.Error(err))
		}
	}
	if text, ok := defaults[messageKey]; ok {
		return text
	}
	return messageKey
}

// Format сообщение по ключу с подстановкой аргументов
func (s *MessageService) Format(ctx context.Context, messageKey string, args ...any) string {
	return fmt.Sprintf(s.Text(ctx, messageKey), args...)
}

// Grade текст оценки
func (s *MessageService) Grade(ctx context.Context, grade string) string {
	return s.Text(ctx, "grade_"+grade)
}

// GetButtons возвращает мапу с текстами кнопок по ключам обработчиков
func (s *MessageService) GetButtons(ctx context.Context, keys []string) map[string]string {
	buttons := make(map[string]string, len(keys))
	for _, key := range keys {
		buttons[key] = s.Text(ctx, key)
	}
	return buttons
}

// ErrorText сообщение для пользователя по ошибке ядра
func (s *MessageService) ErrorText(ctx context.Context, err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyBank):
		return s.Text(ctx, EmptyBank)
	case errors.Is(err, model.ErrNoActiveSession):
		return s.Text(ctx, NoActiveSession)
	case errors.Is(err, model.ErrStaleAnswer):
		return s.Text(ctx, StaleAnswer)
	case errors.Is(err, model.ErrPermissionDenied):
		return s.Text(ctx, PermissionDenied)
	case errors.Is(err, model.ErrStorageFailure):
		return s.Text(ctx, StorageFailure)
	case errors.Is(err, model.ErrValidation):
		return s.Text(ctx, ValidationFailed)
	default:
		return s.Text(ctx, InternalError)
	}
}
