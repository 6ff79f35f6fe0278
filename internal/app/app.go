package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/add_question_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/answer_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/my_results_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/quick_question_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_test_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view_questions_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/view_results_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	msgService "github.com/IT-Nick/quizbot/internal/domain/messages/service"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	questionsService "github.com/IT-Nick/quizbot/internal/domain/questions/service"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	resultsService "github.com/IT-Nick/quizbot/internal/domain/results/service"
	sessionsService "github.com/IT-Nick/quizbot/internal/domain/sessions/service"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/IT-Nick/quizbot/internal/infra/logger"
	"github.com/IT-Nick/quizbot/internal/infra/metrics"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"gopkg.in/telebot.v4"
	telemw "gopkg.in/telebot.v4/middleware"
)

type Services struct {
	questionService *questionsService.QuestionService
	sessionService  *sessionsService.SessionService
	resultService   *resultsService.ResultService
	quizService     *quizService.QuizService
	messageService  *msgService.MessageService
}

type App struct {
	config   *config.Config
	logger   *zap.Logger
	bot      *telebot.Bot
	db       *pgxpool.Pool
	sqlDB    *sql.DB
	server   *http.Server
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	repos    Repositories

	Services
}

func NewApp(configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	log, err := logger.New(logger.Options{
		Level:      configImpl.Log.Level,
		File:       configImpl.Log.File,
		MaxSizeMB:  configImpl.Log.MaxSizeMB,
		MaxBackups: configImpl.Log.MaxBackups,
		MaxAgeDays: configImpl.Log.MaxAgeDays,
		Debug:      configImpl.Log.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("logger.New: %w", err)
	}

	return newApp(context.Background(), configImpl, log)
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	app := &App{
		config:   cfg,
		logger:   log,
		registry: prometheus.NewRegistry(),
	}
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	if err := app.initStorage(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	app.initServices()

	return app, nil
}

// Функция для инициализации сервисов
func (app *App) initServices() {
	app.questionService = questionsService.NewQuestionService(app.repos.questions, app.logger.Named("questions"))
	app.resultService = resultsService.NewResultService(app.repos.results, app.logger.Named("results"), app.metrics,
		resultsService.RetryPolicy{
			Attempts: app.config.Quiz.RecordRetries,
			Delay:    app.config.Quiz.RetryDelay,
		})
	app.sessionService = sessionsService.NewSessionService(app.repos.sessions, app.questionService, app.resultService,
		app.logger.Named("sessions"), app.metrics)
	app.quizService = quizService.NewQuizService(app.questionService, app.sessionService, app.resultService,
		app.logger.Named("quiz"), app.metrics, quizService.Config{
			QuestionsPerTest: app.config.Quiz.QuestionsPerTest,
			ReportFontDir:    app.config.Quiz.ReportFontDir,
		})
	app.messageService = msgService.NewMessageService(app.repos.messages, app.logger.Named("messages"))
}

// ListenAndServeTelegram запускает сервер Telegram бота
func (app *App) ListenAndServeTelegram() error {
	if app.config.TelegramBot.Token == "" {
		return errors.New("telegram bot token is not set")
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: NewPoller(app.config),
		OnError: func(err error, c telebot.Context) {
			app.logger.Error("telegram handler failed", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapHandlersTelegram()

	app.logger.Info("telegram bot started", zap.String("mode", app.config.TelegramBot.Mode))
	go app.bot.Start()

	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	log := app.logger.Named("telegram")
	limiter := middleware.NewRateLimiter(app.config.RateLimit.PerSecond, app.config.RateLimit.Burst)

	app.bot.Use(
		middleware.Recover(log),
		middleware.Logger(log),
		telemw.AutoRespond(),
		limiter.Middleware(func(c telebot.Context) error {
			text := app.messageService.Text(context.Background(), msgService.RateLimited)
			if c.Callback() != nil {
				return c.Respond(&telebot.CallbackResponse{Text: text})
			}
			return c.Send(text)
		}),
	)

	isAdmin := app.config.IsAdmin

	start := start_handler.NewStartHandler(app.messageService, isAdmin)
	addQuestion := add_question_handler.NewAddQuestionHandler(app.quizService, app.messageService, isAdmin, log)
	quick := quick_question_handler.NewQuickQuestionHandler(app.quizService, app.messageService, isAdmin)

	app.bot.Handle("/start", start.GetHandlerFunc())

	// Ученик: тест, быстрый вопрос, свои результаты
	app.bot.Handle(&telebot.InlineButton{Unique: model.StartTestKey},
		start_test_handler.NewStartTestHandler(app.quizService, app.messageService, isAdmin, log).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.AnswerKey},
		answer_handler.NewAnswerHandler(app.quizService, app.messageService, isAdmin, log).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuickQuestionKey}, quick.GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.QuickAnswerKey}, quick.GetAnswerHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.MyResultsKey},
		my_results_handler.NewMyResultsHandler(app.quizService, app.messageService, isAdmin).GetHandlerFunc())

	// Преподаватель: банк вопросов и результаты
	app.bot.Handle(&telebot.InlineButton{Unique: model.ViewQuestionsKey},
		view_questions_handler.NewViewQuestionsHandler(app.quizService, app.messageService, isAdmin).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.ViewResultsKey},
		view_results_handler.NewViewResultsHandler(app.quizService, app.messageService, isAdmin).GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.AddQuestionKey}, addQuestion.GetHandlerFunc())
	app.bot.Handle(&telebot.InlineButton{Unique: model.KindTrueFalseKey}, addQuestion.HandleKind(model.KindTrueFalse))
	app.bot.Handle(&telebot.InlineButton{Unique: model.KindMultipleKey}, addQuestion.HandleKind(model.KindMultipleChoice))
	app.bot.Handle(&telebot.InlineButton{Unique: model.TFTrueKey}, addQuestion.HandleTrueFalse(true))
	app.bot.Handle(&telebot.InlineButton{Unique: model.TFFalseKey}, addQuestion.HandleTrueFalse(false))

	// Текст идет в диалог добавления вопроса, если он открыт, иначе показывается меню
	app.bot.Handle(telebot.OnText, func(c telebot.Context) error {
		handled, err := addQuestion.HandleText(c)
		if handled || err != nil {
			return err
		}
		return start.Handle(c)
	})
}

// ListenAndServeHTTP запускает HTTP сервер
func (app *App) ListenAndServeHTTP() error {
	app.server = &http.Server{
		Addr:              app.config.Addr(),
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	app.logger.Info("http server started", zap.String("addr", app.server.Addr))
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe запускает оба сервера (Telegram и HTTP)
func (app *App) ListenAndServe() error {
	// Запускаем Telegram сервер
	if err := app.ListenAndServeTelegram(); err != nil {
		return fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	// Запускаем HTTP сервер
	if err := app.ListenAndServeHTTP(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Shutdown останавливает бота и HTTP сервер, закрывает хранилища
func (app *App) Shutdown(ctx context.Context) error {
	var errs []error
	if app.bot != nil {
		app.bot.Stop()
	}
	if app.server != nil {
		if err := app.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
		}
	}
	if app.db != nil {
		app.db.Close()
	}
	if app.sqlDB != nil {
		if err := app.sqlDB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close sqlite: %w", err))
		}
	}
	_ = app.logger.Sync()
	return errors.Join(errs...)
}
