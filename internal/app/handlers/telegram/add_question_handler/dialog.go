package add_question_handler

import (
	"strconv"
	"strings"
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Step шаг диалога добавления вопроса
type Step int

const (
	StepKind Step = iota
	StepPrompt
	StepOption
	StepCorrect
	StepTrueFalse
)

// Draft черновик вопроса
type Draft struct {
	Step    Step
	Kind    model.QuestionKind
	Prompt  string
	Options []string
}

// Reply что ответить пользователю после ввода
type Reply struct {
	Draft Draft
	// Done черновик готов к сохранению, CorrectIndex заполнен
	Done         bool
	CorrectIndex int
	// NeedOptions введено «готово» при меньше чем двух вариантах
	NeedOptions bool
	// BadNumber номер правильного ответа не распознан или вне диапазона
	BadNumber bool
}

// Dialogs черновики преподавателей, по одному на пользователя
type Dialogs struct {
	mu     sync.Mutex
	drafts map[int64]*Draft
}

// NewDialogs создает пустое хранилище диалогов
func NewDialogs() *Dialogs {
	return &Dialogs{drafts: make(map[int64]*Draft)}
}

// Begin начинает новый диалог, старый черновик отбрасывается
func (d *Dialogs) Begin(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drafts[userID] = &Draft{Step: StepKind}
}

// Active true, если пользователь в диалоге
func (d *Dialogs) Active(userID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.drafts[userID]
	return ok
}

// Cancel завершает диалог без сохранения
func (d *Dialogs) Cancel(userID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.drafts, userID)
}

// ChooseKind выбор типа вопроса; false, если диалог не на этом шаге
func (d *Dialogs) ChooseKind(userID int64, kind model.QuestionKind) (Draft, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	draft, ok := d.drafts[userID]
	if !ok || draft.Step != StepKind {
		return Draft{}, false
	}
	draft.Kind = kind
	draft.Step = StepPrompt
	return *draft, true
}

// ChooseTrueFalse правильный ответ для вопроса true/false; диалог завершается
func (d *Dialogs) ChooseTrueFalse(userID int64, value bool) (Reply, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	draft, ok := d.drafts[userID]
	if !ok || draft.Step != StepTrueFalse {
		return Reply{}, false
	}
	delete(d.drafts, userID)
	return Reply{Draft: *draft, Done: true, CorrectIndex: model.TrueFalseIndex(value)}, true
}

// Text обрабатывает текстовый ввод; false, если диалога нет или шаг ждет кнопку
func (d *Dialogs) Text(userID int64, text, doneWord string) (Reply, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	draft, ok := d.drafts[userID]
	if !ok {
		return Reply{}, false
	}
	text = strings.TrimSpace(text)

	switch draft.Step {
	case StepPrompt:
		if text == "" {
			return Reply{Draft: *draft}, true
		}
		draft.Prompt = text
		if draft.Kind == model.KindTrueFalse {
			draft.Step = StepTrueFalse
		} else {
			draft.Step = StepOption
		}
		return Reply{Draft: *draft}, true

	case StepOption:
		if strings.EqualFold(text, doneWord) {
			if len(draft.Options) < 2 {
				return Reply{Draft: *draft, NeedOptions: true}, true
			}
			draft.Step = StepCorrect
			return Reply{Draft: *draft}, true
		}
		if text != "" {
			draft.Options = append(draft.Options, text)
		}
		return Reply{Draft: *draft}, true

	case StepCorrect:
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(draft.Options) {
			return Reply{Draft: *draft, BadNumber: true}, true
		}
		delete(d.drafts, userID)
		return Reply{Draft: *draft, Done: true, CorrectIndex: n - 1}, true
	}
	return Reply{}, false
}
