package dto

import "github.com/IT-Nick/quizbot/internal/domain/model"

// QuestionView вопрос для отображения; правильный ответ скрыт
type QuestionView struct {
	SessionID  string             `json:"session_id,omitempty"`
	QuestionID int64              `json:"question_id"`
	Kind       model.QuestionKind `json:"kind"`
	Prompt     string             `json:"prompt"`
	Options    []string           `json:"options"`
	Number     int                `json:"number"`
	Total      int                `json:"total"`
}

// SessionView ответ на старт теста
type SessionView struct {
	SessionID string       `json:"session_id"`
	Total     int          `json:"total"`
	First     QuestionView `json:"first"`
}

// ScoreSummary итог завершенного теста
type ScoreSummary struct {
	ResultID   int64   `json:"result_id"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// AnswerOutcome результат ответа на вопрос
type AnswerOutcome struct {
	Kind          model.QuestionKind `json:"kind"`
	IsCorrect     bool               `json:"is_correct"`
	CorrectIndex  int                `json:"correct_index"`
	CorrectOption string             `json:"correct_option"`
	Completed     bool               `json:"completed"`
	Next          *QuestionView      `json:"next,omitempty"`
	Summary       *ScoreSummary      `json:"summary,omitempty"`
}

// QuickOutcome результат ответа в быстром режиме
type QuickOutcome struct {
	Kind          model.QuestionKind `json:"kind"`
	IsCorrect     bool               `json:"is_correct"`
	CorrectIndex  int                `json:"correct_index"`
	CorrectOption string             `json:"correct_option"`
	Tally         model.Tally        `json:"tally"`
}

// NewQuestionView строит представление вопроса без правильного ответа
func NewQuestionView(q model.Question, number, total int) QuestionView {
	return QuestionView{
		QuestionID: q.ID,
		Kind:       q.Kind,
		Prompt:     q.Prompt,
		Options:    append([]string(nil), q.Options...),
		Number:     number,
		Total:      total,
	}
}

// NewScoreSummary строит итог по счету
func NewScoreSummary(resultID int64, score, total int) ScoreSummary {
	pct := model.Percentage(score, total)
	return ScoreSummary{
		ResultID:   resultID,
		Score:      score,
		Total:      total,
		Percentage: pct,
		Grade:      model.GradeBand(pct),
	}
}
