package render

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	messageService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// MaxMessageLen предел длины сообщения Telegram
const MaxMessageLen = 4000

// AdminChecker сообщает, является ли Telegram-пользователь преподавателем
type AdminChecker func(telegramID int64) bool

// Identity данные отправителя для ядра
func Identity(u *telebot.User, isAdmin AdminChecker) model.Identity {
	return model.Identity{
		UserID:      strconv.FormatInt(u.ID, 10),
		DisplayName: DisplayName(u),
		IsTeacher:   isAdmin != nil && isAdmin(u.ID),
	}
}

// DisplayName имя пользователя: имя и фамилия, иначе username, иначе ID
func DisplayName(u *telebot.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name != "" {
		return name
	}
	if u.Username != "" {
		return "@" + u.Username
	}
	return strconv.FormatInt(u.ID, 10)
}

// OptionLabel текст варианта ответа; для true/false берется из каталога
func OptionLabel(ctx context.Context, msgs *messageService.MessageService, kind model.QuestionKind, i int, option string) string {
	if kind == model.KindTrueFalse {
		if i == model.TrueFalseIndex(true) {
			return msgs.Text(ctx, model.TFTrueKey)
		}
		return msgs.Text(ctx, model.TFFalseKey)
	}
	return fmt.Sprintf("%d. %s", i+1, option)
}

// CorrectLabel текст правильного варианта для сообщения пользователю
func CorrectLabel(ctx context.Context, msgs *messageService.MessageService, q model.Question) string {
	return OptionLabel(ctx, msgs, q.Kind, q.CorrectIndex, q.CorrectOption())
}

// AnswerData данные кнопки ответа: questionID|choice
func AnswerData(questionID int64, choice int) []string {
	return []string{strconv.FormatInt(questionID, 10), strconv.Itoa(choice)}
}

// ParseAnswerData разбирает данные кнопки ответа
func ParseAnswerData(data string) (int64, int, error) {
	parts := strings.Split(strings.TrimSpace(data), "|")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: invalid callback data %q", model.ErrValidation, data)
	}
	questionID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid question id %q", model.ErrValidation, parts[0])
	}
	choice, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid choice %q", model.ErrValidation, parts[1])
	}
	return questionID, choice, nil
}

// QuestionMarkup клавиатура с вариантами ответа; unique задает обработчик кнопок
func QuestionMarkup(ctx context.Context, msgs *messageService.MessageService, v dto.QuestionView, unique string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(v.Options))
	for i, option := range v.Options {
		btn := markup.Data(OptionLabel(ctx, msgs, v.Kind, i, option), unique, AnswerData(v.QuestionID, i)...)
		rows = append(rows, markup.Row(btn))
	}
	markup.Inline(rows...)
	return markup
}

// SendQuestion отправляет вопрос с кнопками ответа
func SendQuestion(ctx context.Context, c telebot.Context, msgs *messageService.MessageService, v dto.QuestionView, unique string) error {
	text := msgs.Format(ctx, messageService.QuestionText, v.Number, v.Total, v.Prompt)
	return c.Send(text, QuestionMarkup(ctx, msgs, v, unique))
}

// MenuMarkup главное меню из ключей кнопок
func MenuMarkup(ctx context.Context, msgs *messageService.MessageService, keys []string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	buttons := msgs.GetButtons(ctx, keys)
	rows := make([]telebot.Row, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, markup.Row(markup.Data(buttons[key], key)))
	}
	markup.Inline(rows...)
	return markup
}

// Truncate обрезает текст до MaxMessageLen символов
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxMessageLen {
		return text
	}
	return string(runes[:MaxMessageLen-1]) + "…"
}

// ReplyError отвечает пользователю текстом по ошибке ядра
func ReplyError(ctx context.Context, c telebot.Context, msgs *messageService.MessageService, err error) error {
	text := msgs.ErrorText(ctx, err)
	if c.Callback() != nil {
		return c.Respond(&telebot.CallbackResponse{Text: text})
	}
	return c.Send(text)
}
