package results_report_handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// ResultsReportHandler отдает PDF‑отчёт по результатам
type ResultsReportHandler struct {
	quizService *quizService.QuizService
}

// NewResultsReportHandler создает новый экземпляр обработчика
func NewResultsReportHandler(quizService *quizService.QuizService) *ResultsReportHandler {
	return &ResultsReportHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *ResultsReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Отчёт собирается в буфер, чтобы при ошибке успеть отдать JSON со статусом
	var buf bytes.Buffer
	if err := h.quizService.ResultsReport(ctx, auth.IdentityFrom(ctx), &buf); err != nil {
		httpError.ErrorResponse(w, httpError.StatusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="results.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
