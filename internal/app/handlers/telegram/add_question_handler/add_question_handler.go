package add_question_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/render"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"
)

// AddQuestionHandler диалог добавления вопроса преподавателем:
// тип, текст, варианты до слова «готово», номер правильного ответа.
type AddQuestionHandler struct {
	quizService    *quizService.QuizService
	messageService *messageService.MessageService
	isAdmin        render.AdminChecker
	dialogs        *Dialogs
	logger         *zap.Logger
}

// NewAddQuestionHandler возвращает новый экземпляр обработчика
func NewAddQuestionHandler(
	quizService *quizService.QuizService,
	messageService *messageService.MessageService,
	isAdmin render.AdminChecker,
	logger *zap.Logger,
) *AddQuestionHandler {
	return &AddQuestionHandler{
		quizService:    quizService,
		messageService: messageService,
		isAdmin:        isAdmin,
		dialogs:        NewDialogs(),
		logger:         logger,
	}
}

// Handle начало диалога по кнопке "Добавить вопрос"
func (h *AddQuestionHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	if !h.isAdmin(c.Sender().ID) {
		return render.ReplyError(ctx, c, h.messageService, model.ErrPermissionDenied)
	}
	if c.Callback() != nil {
		_ = c.Respond()
	}

	h.dialogs.Begin(c.Sender().ID)
	return c.Send(h.messageService.Text(ctx, messageService.AddChooseKind),
		render.MenuMarkup(ctx, h.messageService, []string{model.KindTrueFalseKey, model.KindMultipleKey}))
}

// HandleKind выбор типа вопроса
func (h *AddQuestionHandler) HandleKind(kind model.QuestionKind) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		ctx := context.Background()
		_ = c.Respond()
		if _, ok := h.dialogs.ChooseKind(c.Sender().ID, kind); !ok {
			return nil
		}
		return c.Send(h.messageService.Text(ctx, messageService.AddEnterPrompt))
	}
}

// HandleTrueFalse выбор правильного ответа для вопроса true/false
func (h *AddQuestionHandler) HandleTrueFalse(value bool) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		_ = c.Respond()
		reply, ok := h.dialogs.ChooseTrueFalse(c.Sender().ID, value)
		if !ok {
			return nil
		}
		return h.save(c, reply)
	}
}

// HandleText текстовый ввод внутри диалога. Вне диалога возвращает false.
func (h *AddQuestionHandler) HandleText(c telebot.Context) (bool, error) {
	ctx := context.Background()
	doneWord := h.messageService.Text(ctx, messageService.AddDoneWord)

	reply, ok := h.dialogs.Text(c.Sender().ID, c.Text(), doneWord)
	if !ok {
		return false, nil
	}

	switch {
	case reply.Done:
		return true, h.save(c, reply)
	case reply.NeedOptions:
		return true, c.Send(h.messageService.Text(ctx, messageService.AddNeedOptions))
	case reply.BadNumber:
		return true, c.Send(h.messageService.Format(ctx, messageService.AddBadNumber, len(reply.Draft.Options)))
	}

	switch reply.Draft.Step {
	case StepPrompt:
		return true, c.Send(h.messageService.Text(ctx, messageService.AddEnterPrompt))
	case StepOption:
		return true, c.Send(h.messageService.Format(ctx, messageService.AddEnterOption, len(reply.Draft.Options)+1, doneWord))
	case StepCorrect:
		return true, c.Send(h.messageService.Format(ctx, messageService.AddEnterCorrect, len(reply.Draft.Options)))
	case StepTrueFalse:
		return true, c.Send(h.messageService.Text(ctx, messageService.AddChooseTF),
			render.MenuMarkup(ctx, h.messageService, []string{model.TFTrueKey, model.TFFalseKey}))
	}
	return true, nil
}

func (h *AddQuestionHandler) save(c telebot.Context, reply Reply) error {
	ctx := context.Background()
	id := render.Identity(c.Sender(), h.isAdmin)

	questionID, err := h.quizService.AddQuestion(ctx, id, reply.Draft.Kind, reply.Draft.Prompt, reply.Draft.Options, reply.CorrectIndex)
	if err != nil {
		h.logger.Warn("failed to add question", zap.String("user_id", id.UserID), zap.Error(err))
		return c.Send(h.messageService.ErrorText(ctx, err))
	}
	return c.Send(h.messageService.Format(ctx, messageService.QuestionAdded, questionID))
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AddQuestionHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
