package view_questions_handler

import (
	"context"
	"strings"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// ViewQuestionsHandler список вопросов банка для преподавателя
type ViewQuestionsHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
}

// NewViewQuestionsHandler возвращает новый экземпляр обработчика
func NewViewQuestionsHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
) *ViewQuestionsHandler {
	return &ViewQuestionsHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
	}
}

func (h *ViewQuestionsHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	questions, err := h.quizService.ListQuestions(ctx, id)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}
	if len(questions) == 0 {
		return c.Send(h.messageService.Text(ctx, messageService.NoQuestions))
	}

	var b strings.Builder
	b.WriteString(h.messageService.Text(ctx, messageService.QuestionsHeader))
	b.WriteString("\n")
	for _, q := range questions {
		b.WriteString("\n")
		b.WriteString(h.messageService.Format(ctx, messageService.QuestionLine, q.ID, h.kindLabel(ctx, q.Kind), q.Prompt, render.CorrectLabel(ctx, h.messageService, q)))
		b.WriteString("\n")
	}
	// Длинный список обрезается до лимита Telegram
	return c.Send(render.Truncate(b.String()))
}

func (h *ViewQuestionsHandler) kindLabel(ctx context.Context, kind model.QuestionKind) string {
	if kind == model.KindTrueFalse {
		return h.messageService.Text(ctx, model.KindTrueFalseKey)
	}
	return h.messageService.Text(ctx, model.KindMultipleKey)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ViewQuestionsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
