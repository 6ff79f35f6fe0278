package app

import (
	"net/http"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/add_question_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/all_results_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/auth"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/list_questions_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/results_report_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/user_results_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router HTTP API преподавателя, метрики и проверка живости
func (app *App) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Recoverer, middleware.RequestLogger(app.logger.Named("http")))
	if origins := app.config.Server.AllowedOrigins; len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", auth.TokenHeader},
			ExposedHeaders: []string{"Content-Length", "Content-Disposition"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(auth.TeacherToken(app.config.Admin.Token))

		r.Method(http.MethodGet, "/questions", list_questions_handler.NewListQuestionsHandler(app.quizService))
		r.Method(http.MethodPost, "/questions", add_question_handler.NewAddQuestionHandler(app.quizService))
		r.Method(http.MethodGet, "/results", all_results_handler.NewAllResultsHandler(app.quizService))
		r.Method(http.MethodGet, "/results/report.pdf", results_report_handler.NewResultsReportHandler(app.quizService))
		r.Method(http.MethodGet, "/results/{userID}", user_results_handler.NewUserResultsHandler(app.quizService))
	})

	return r
}
