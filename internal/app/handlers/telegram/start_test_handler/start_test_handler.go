package start_test_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"
)

// StartTestHandler структура для обработки нажатия кнопки "Начать тест"
type StartTestHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
	logger         *zap.Logger
}

// NewStartTestHandler возвращает новый экземпляр обработчика
func NewStartTestHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
	logger *zap.Logger,
) *StartTestHandler {
	return &StartTestHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
		logger:         logger,
	}
}

// Handle начинает новый тест и отправляет первый вопрос
func (h *StartTestHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	view, err := h.quizService.StartTest(ctx, id, 0)
	if err != nil {
		h.logger.Warn("failed to start test", zap.String("user_id", id.UserID), zap.Error(err))
		return render.ReplyError(ctx, c, h.messageService, err)
	}

	if c.Callback() != nil {
		_ = c.Respond()
	}
	return render.SendQuestion(ctx, c, h.messageService, view.First, model.AnswerKey)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartTestHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
