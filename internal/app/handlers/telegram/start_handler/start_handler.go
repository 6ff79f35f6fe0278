package start_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct {
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(messageService *messageService.MessageService, isAdmin render.AdminChecker) *StartHandler {
	return &StartHandler{
		messageService: messageService,
		isAdmin:        isAdmin,
	}
}

// Handle показывает меню: преподавателю свое, ученику свое
func (h *StartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	welcomeKey, buttons := messageService.WelcomeStudent, model.StudentButtons
	if id.IsTeacher {
		welcomeKey, buttons = messageService.WelcomeTeacher, model.TeacherButtons
	}

	return c.Send(
		h.messageService.Format(ctx, welcomeKey, id.DisplayName),
		render.MenuMarkup(ctx, h.messageService, buttons),
	)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
