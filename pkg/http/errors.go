package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

type errorBody struct {
	Error string `json:"error"`
}

// ErrorResponse пишет JSON-ответ с ошибкой
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message})
}

// StatusFor HTTP-статус для ошибки ядра
func StatusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound), errors.Is(err, model.ErrNoActiveSession):
		return http.StatusNotFound
	case errors.Is(err, model.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, model.ErrStaleAnswer):
		return http.StatusConflict
	case errors.Is(err, model.ErrEmptyBank):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrStorageFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// JSONResponse пишет v в формате JSON со статусом status
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
