package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	msgRepo "github.com/IT-Nick/quizbot/internal/domain/messages/repository"
	questionsRepo "github.com/IT-Nick/quizbot/internal/domain/questions/repository"
	resultsRepo "github.com/IT-Nick/quizbot/internal/domain/results/repository"
	sessionsRepo "github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/IT-Nick/quizbot/internal/infra/sqlite"
	"go.uber.org/zap"
)

// Repositories хранилища, выбранные по storage.type
type Repositories struct {
	questions questionsRepo.Repository
	results   resultsRepo.Repository
	sessions  sessionsRepo.Store
	messages  msgRepo.Repository
}

// initStorage открывает хранилище по типу из конфигурации. Активные сессии живут в памяти,
// кроме режима json, где они пишутся в sessions.json.
func (app *App) initStorage(ctx context.Context) error {
	const op = "app.initStorage"
	cfg := app.config

	switch cfg.Storage.Type {
	case config.StorageMemory:
		app.repos.questions = questionsRepo.NewMemoryRepository()
		app.repos.results = resultsRepo.NewMemoryRepository()

	case config.StorageJSON:
		if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
			return fmt.Errorf("%s: failed to create data dir: %w", op, err)
		}
		questions, err := questionsRepo.NewJSONRepository(cfg.DataFile("questions.json"))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		results, err := resultsRepo.NewJSONRepository(cfg.DataFile("results.json"))
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		app.repos.questions, app.repos.results = questions, results

	case config.StoragePostgres:
		db, err := InitDatabase(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		app.db = db
		app.repos.questions = questionsRepo.NewPostgresRepository(db)
		app.repos.results = resultsRepo.NewPostgresRepository(db)
		app.repos.messages = msgRepo.NewMessageRepository(db)

	case config.StorageSQLite:
		if dir := filepath.Dir(cfg.Storage.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("%s: failed to create sqlite dir: %w", op, err)
			}
		}
		db, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		app.sqlDB = db
		app.repos.questions = questionsRepo.NewSQLiteRepository(db)
		app.repos.results = resultsRepo.NewSQLiteRepository(db)

	default:
		return fmt.Errorf("%s: unknown storage type %q", op, cfg.Storage.Type)
	}

	sessions, err := sessionsRepo.NewStore(cfg.Storage.Type, cfg.DataFile("sessions.json"))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	app.repos.sessions = sessions

	// Файл с текстами важнее таблицы messages
	if cfg.Storage.MessagesFile != "" {
		messages, err := msgRepo.NewYAMLRepository(cfg.Storage.MessagesFile)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		app.repos.messages = messages
	}

	app.logger.Info("storage initialized", zap.String("type", cfg.Storage.Type))
	return nil
}
