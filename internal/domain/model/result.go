package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout формат времени результата, сортируемый, с точностью до минуты
const TimestampLayout = "2006-01-02 15:04"

// Result неизменяемая запись о завершенном тесте
type Result struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Timestamp   time.Time `json:"timestamp"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
}

// Percentage процент правильных ответов результата
func (r Result) Percentage() float64 {
	return Percentage(r.Score, r.Total)
}

// Date время результата в формате TimestampLayout
func (r Result) Date() string {
	return r.Timestamp.Format(TimestampLayout)
}

type resultJSON struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Timestamp   string `json:"timestamp"`
	Score       int    `json:"score"`
	Total       int    `json:"total"`
}

// MarshalJSON пишет время в формате TimestampLayout
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		ID:          r.ID,
		UserID:      r.UserID,
		DisplayName: r.DisplayName,
		Timestamp:   r.Date(),
		Score:       r.Score,
		Total:       r.Total,
	})
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var raw resultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts, err := time.ParseInLocation(TimestampLayout, raw.Timestamp, time.Local)
	if err != nil {
		return fmt.Errorf("invalid result timestamp %q: %w", raw.Timestamp, err)
	}
	*r = Result{
		ID:          raw.ID,
		UserID:      raw.UserID,
		DisplayName: raw.DisplayName,
		Timestamp:   ts,
		Score:       raw.Score,
		Total:       raw.Total,
	}
	return nil
}

// Percentage 100*score/total, 0 при total <= 0, обрезается в [0,100]
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	p := 100 * float64(score) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// Границы оценок
const (
	GradeExcellent   = "excellent"
	GradeVeryGood    = "very good"
	GradeAcceptable  = "acceptable"
	GradeNeedsReview = "needs review"
)

// GradeBand возвращает оценку по проценту
func GradeBand(pct float64) string {
	switch {
	case pct >= 80:
		return GradeExcellent
	case pct >= 60:
		return GradeVeryGood
	case pct >= 50:
		return GradeAcceptable
	default:
		return GradeNeedsReview
	}
}
