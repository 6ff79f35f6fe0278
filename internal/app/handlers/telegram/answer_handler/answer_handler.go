package answer_handler

import (
	"context"
	"errors"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"
)

// AnswerHandler обрабатывает нажатие на вариант ответа в тесте
type AnswerHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
	logger         *zap.Logger
}

func NewAnswerHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
	logger *zap.Logger,
) *AnswerHandler {
	return &AnswerHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
		logger:         logger,
	}
}

func (h *AnswerHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	questionID, choice, err := render.ParseAnswerData(c.Callback().Data)
	if err != nil {
		h.logger.Warn("invalid answer callback", zap.String("data", c.Callback().Data), zap.Error(err))
		return render.ReplyError(ctx, c, h.messageService, err)
	}

	outcome, err := h.quizService.SubmitAnswer(ctx, id, questionID, choice)
	if err != nil {
		if !errors.Is(err, model.ErrStaleAnswer) && !errors.Is(err, model.ErrNoActiveSession) {
			h.logger.Error("failed to submit answer", zap.String("user_id", id.UserID), zap.Error(err))
		}
		return render.ReplyError(ctx, c, h.messageService, err)
	}

	// Кнопки предыдущего вопроса больше не нужны
	if c.Message() != nil {
		_ = c.Delete()
	}
	_ = c.Respond()

	verdict := h.messageService.Text(ctx, messageService.AnswerCorrect)
	if !outcome.IsCorrect {
		verdict = h.messageService.Format(ctx, messageService.AnswerWrong, render.OptionLabel(ctx, h.messageService, outcome.Kind, outcome.CorrectIndex, outcome.CorrectOption))
	}
	if err := c.Send(verdict); err != nil {
		return err
	}

	if outcome.Completed {
		s := outcome.Summary
		return c.Send(h.messageService.Format(ctx, messageService.TestFinished,
			s.Score, s.Total, s.Percentage, h.messageService.Grade(ctx, s.Grade)))
	}
	return render.SendQuestion(ctx, c, h.messageService, *outcome.Next, model.AnswerKey)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
