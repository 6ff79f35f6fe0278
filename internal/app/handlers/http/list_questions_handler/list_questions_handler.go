package list_questions_handler

import (
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// ListQuestionsHandler структура для обработчика
type ListQuestionsHandler struct {
	quizService *quizService.QuizService
}

// NewListQuestionsHandler создает новый экземпляр обработчика
func NewListQuestionsHandler(quizService *quizService.QuizService) *ListQuestionsHandler {
	return &ListQuestionsHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *ListQuestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	questions, err := h.quizService.ListQuestions(r.Context(), auth.IdentityFrom(r.Context()))
	if err != nil {
		httpError.ErrorResponse(w, httpError.StatusFor(err), err.Error())
		return
	}
	httpError.JSONResponse(w, http.StatusOK, questions)
}
