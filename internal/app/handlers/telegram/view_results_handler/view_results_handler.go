package view_results_handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/my_results_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// ViewResultsHandler результаты всех учеников для преподавателя
type ViewResultsHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
}

// NewViewResultsHandler возвращает новый экземпляр обработчика
func NewViewResultsHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
) *ViewResultsHandler {
	return &ViewResultsHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
	}
}

func (h *ViewResultsHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	all, err := h.quizService.AllResults(ctx, id)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}
	if all.TotalUsers == 0 {
		return c.Send(h.messageService.Text(ctx, messageService.NoResults))
	}

	var b strings.Builder
	b.WriteString(h.messageService.Text(ctx, messageService.AllResultsHeader))
	b.WriteString("\n")
	for _, u := range all.Users {
		fmt.Fprintf(&b, "\n%s (ID: %s)\n", u.DisplayName, u.UserID)
		my_results_handler.WriteResultLines(ctx, &b, h.messageService, u.Results)
	}
	return c.Send(render.Truncate(b.String()))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ViewResultsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
