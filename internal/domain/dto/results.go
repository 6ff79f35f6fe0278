package dto

import "github.com/IT-Nick/quizbot/internal/domain/model"

// UserResultsResponse история результатов пользователя
type UserResultsResponse struct {
	UserID      string       `json:"user_id"`
	DisplayName string       `json:"display_name"`
	Results     []ResultInfo `json:"results"`
}

// AllResultsResponse результаты всех пользователей
type AllResultsResponse struct {
	TotalUsers int                   `json:"total_users"`
	Users      []UserResultsResponse `json:"users"`
}

type ResultInfo struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// NewResultInfo переводит запись результата в представление
func NewResultInfo(r model.Result) ResultInfo {
	pct := r.Percentage()
	return ResultInfo{
		ID:         r.ID,
		Date:       r.Date(),
		Score:      r.Score,
		Total:      r.Total,
		Percentage: pct,
		Grade:      model.GradeBand(pct),
	}
}

// NewUserResults собирает историю пользователя; имя берется из последней записи
func NewUserResults(userID string, results []model.Result) UserResultsResponse {
	resp := UserResultsResponse{UserID: userID, Results: make([]ResultInfo, 0, len(results))}
	for _, r := range results {
		resp.Results = append(resp.Results, NewResultInfo(r))
		if r.DisplayName != "" {
			resp.DisplayName = r.DisplayName
		}
	}
	return resp
}
