package quick_question_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// QuickQuestionHandler быстрый режим: один случайный вопрос за нажатие и общий счет
type QuickQuestionHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
}

// NewQuickQuestionHandler возвращает новый экземпляр обработчика
func NewQuickQuestionHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
) *QuickQuestionHandler {
	return &QuickQuestionHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
	}
}

// Handle отправляет случайный вопрос
func (h *QuickQuestionHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	view, err := h.quizService.RandomQuestion(ctx, id)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}
	return c.Send(view.Prompt, render.QuestionMarkup(ctx, h.messageService, view, model.QuickAnswerKey))
}

// HandleAnswer проверяет ответ и показывает счет, затем следующий вопрос
func (h *QuickQuestionHandler) HandleAnswer(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	questionID, choice, err := render.ParseAnswerData(c.Callback().Data)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	outcome, err := h.quizService.SubmitQuickAnswer(ctx, id, questionID, choice)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	if c.Message() != nil {
		_ = c.Delete()
	}
	_ = c.Respond()

	verdict := h.messageService.Text(ctx, messageService.AnswerCorrect)
	if !outcome.IsCorrect {
		verdict = h.messageService.Format(ctx, messageService.AnswerWrong,
			render.OptionLabel(ctx, h.messageService, outcome.Kind, outcome.CorrectIndex, outcome.CorrectOption))
	}
	tally := h.messageService.Format(ctx, messageService.QuickTally, outcome.Tally.Correct, outcome.Tally.Answered)
	if err := c.Send(verdict + "\n" + tally); err != nil {
		return err
	}
	return h.Handle(c)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *QuickQuestionHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}

// GetAnswerHandlerFunc обработчик кнопок ответа быстрого режима
func (h *QuickQuestionHandler) GetAnswerHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.HandleAnswer(c)
	}
}
