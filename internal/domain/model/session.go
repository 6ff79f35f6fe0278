package model

import "time"

// AnswerRecord запись журнала ответов внутри сессии
type AnswerRecord struct {
	QuestionID  int64 `json:"question_id"`
	ChosenIndex int   `json:"chosen_index"`
	IsCorrect   bool  `json:"is_correct"`
}

// Session активный тест пользователя. Вопросы зафиксированы при старте.
type Session struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	DisplayName string         `json:"display_name"`
	Questions   []Question     `json:"questions"`
	Cursor      int            `json:"cursor"`
	Score       int            `json:"score"`
	AnswerLog   []AnswerRecord `json:"answer_log"`
	StartedAt   time.Time      `json:"started_at"`
}

// Total количество вопросов в сессии
func (s *Session) Total() int {
	return len(s.Questions)
}

// Finished true, если курсор дошел до конца
func (s *Session) Finished() bool {
	return s.Cursor >= len(s.Questions)
}

// CurrentQuestion вопрос под курсором
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.Finished() {
		return Question{}, false
	}
	return s.Questions[s.Cursor], true
}

// Clone глубокая копия сессии
func (s Session) Clone() Session {
	out := s
	out.Questions = make([]Question, len(s.Questions))
	for i, q := range s.Questions {
		out.Questions[i] = q.Clone()
	}
	out.AnswerLog = append([]AnswerRecord(nil), s.AnswerLog...)
	return out
}

// Tally счетчик быстрого режима (один случайный вопрос за запрос)
type Tally struct {
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}
