package all_results_handler

import (
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// AllResultsHandler структура для обработчика
type AllResultsHandler struct {
	quizService *quizService.QuizService
}

// NewAllResultsHandler создает новый экземпляр обработчика
func NewAllResultsHandler(quizService *quizService.QuizService) *AllResultsHandler {
	return &AllResultsHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *AllResultsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response, err := h.quizService.AllResults(ctx, auth.IdentityFrom(ctx))
	if err != nil {
		httpError.ErrorResponse(w, httpError.StatusFor(err), err.Error())
		return
	}
	httpError.JSONResponse(w, http.StatusOK, response)
}
