package add_question_handler

import (
	"encoding/json"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// AddQuestionRequest структура для данных запроса
type AddQuestionRequest struct {
	Kind         model.QuestionKind `json:"kind"`
	Prompt       string             `json:"prompt"`
	Options      []string           `json:"options"`
	CorrectIndex int                `json:"correct_index"`
}

// AddQuestionResponse ответ с ID нового вопроса
type AddQuestionResponse struct {
	ID int64 `json:"id"`
}

// AddQuestionHandler структура для обработчика
type AddQuestionHandler struct {
	quizService *quizService.QuizService
}

// NewAddQuestionHandler создает новый экземпляр обработчика
func NewAddQuestionHandler(quizService *quizService.QuizService) *AddQuestionHandler {
	return &AddQuestionHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *AddQuestionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request AddQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	id, err := h.quizService.AddQuestion(ctx, auth.IdentityFrom(ctx), request.Kind, request.Prompt, request.Options, request.CorrectIndex)
	if err != nil {
		httpError.ErrorResponse(w, httpError.StatusFor(err), err.Error())
		return
	}
	httpError.JSONResponse(w, http.StatusCreated, AddQuestionResponse{ID: id})
}
