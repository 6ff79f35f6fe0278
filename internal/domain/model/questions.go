package model

import "time"

// QuestionKind тип вопроса
type QuestionKind string

const (
	KindTrueFalse      QuestionKind = "true_false"
	KindMultipleChoice QuestionKind = "multiple_choice"
)

// TrueFalseOptions варианты ответа для вопроса типа "верно/неверно".
// Индекс 0 соответствует "true", индекс 1 соответствует "false".
var TrueFalseOptions = []string{"true", "false"}

// Question представляет вопрос из банка вопросов
type Question struct {
	ID           int64        `json:"id"`
	Kind         QuestionKind `json:"kind"`
	Prompt       string       `json:"prompt"`
	Options      []string     `json:"options"`
	CorrectIndex int          `json:"correct_index"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Valid проверяет, что тип вопроса известен
func (k QuestionKind) Valid() bool {
	return k == KindTrueFalse || k == KindMultipleChoice
}

// Clone возвращает копию вопроса с собственным срезом вариантов
func (q Question) Clone() Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	return out
}

// CorrectOption возвращает текст правильного варианта
func (q Question) CorrectOption() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// TrueFalseIndex переводит булев ответ в индекс варианта
func TrueFalseIndex(v bool) int {
	if v {
		return 0
	}
	return 1
}
