package user_results_handler

import (
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
	"github.com/go-chi/chi/v5"
)

// UserResultsHandler история результатов одного пользователя
type UserResultsHandler struct {
	quizService *quizService.QuizService
}

// NewUserResultsHandler создает новый экземпляр обработчика
func NewUserResultsHandler(quizService *quizService.QuizService) *UserResultsHandler {
	return &UserResultsHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *UserResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing user id")
		return
	}

	ctx := r.Context()
	response, err := h.quizService.UserResults(ctx, auth.IdentityFrom(ctx), userID)
	if err != nil {
		httpError.ErrorResponse(w, httpError.StatusFor(err), err.Error())
		return
	}
	httpError.JSONResponse(w, http.StatusOK, response)
}
