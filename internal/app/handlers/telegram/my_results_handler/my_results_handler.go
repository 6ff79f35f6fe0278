package my_results_handler

import (
	"context"
	"strings"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	"github.com/IT-Nick/quizbot/internal/domain/dto"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// MyResultsHandler показывает пользователю его историю результатов
type MyResultsHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
}

// NewMyResultsHandler возвращает новый экземпляр обработчика
func NewMyResultsHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
) *MyResultsHandler {
	return &MyResultsHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
	}
}

func (h *MyResultsHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	mine, err := h.quizService.MyResults(ctx, id)
	if err != nil {
		return render.ReplyError(ctx, c, h.messageService, err)
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}
	if len(mine.Results) == 0 {
		return c.Send(h.messageService.Text(ctx, messageService.NoResults))
	}

	var b strings.Builder
	b.WriteString(h.messageService.Text(ctx, messageService.MyResultsHeader))
	b.WriteString("\n")
	WriteResultLines(ctx, &b, h.messageService, mine.Results)
	return c.Send(render.Truncate(b.String()))
}

// WriteResultLines по строке на результат
func WriteResultLines(ctx context.Context, b *strings.Builder, msgs *messageService.MessageService, results []dto.ResultInfo) {
	for _, r := range results {
		b.WriteString(msgs.Format(ctx, messageService.ResultLine, r.Date, r.Score, r.Total, r.Percentage, msgs.Grade(ctx, r.Grade)))
		b.WriteString("\n")
	}
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *MyResultsHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
