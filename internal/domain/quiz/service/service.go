package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	questions "github.com/IT-Nick/quizbot/internal/domain/questions/service"
	results "github.com/IT-Nick/quizbot/internal/domain/results/service"
	sessions "github.com/IT-Nick/quizbot/internal/domain/sessions/service"
	"github.com/IT-Nick/quizbot/internal/infra/metrics"
	"github.com/IT-Nick/quizbot/internal/infra/report"
	"go.uber.org/zap"
)

// DefaultQuestionsPerTest размер теста, если вызывающий не указал свой
const DefaultQuestionsPerTest = 5

// Config параметры фасада
type Config struct {
	QuestionsPerTest int
	ReportFontDir    string
}

// QuizService единая точка входа для адаптеров (Telegram, HTTP).
// Роль преподавателя берется из флага Identity.IsTeacher, который выставляет адаптер.
type QuizService struct {
	questions *questions.QuestionService
	sessions  *sessions.SessionService
	results   *results.ResultService
	logger    *zap.Logger
	metrics   *metrics.Metrics
	cfg       Config
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(
	q *questions.QuestionService,
	s *sessions.SessionService,
	r *results.ResultService,
	logger *zap.Logger,
	m *metrics.Metrics,
	cfg Config,
) *QuizService {
	if cfg.QuestionsPerTest <= 0 {
		cfg.QuestionsPerTest = DefaultQuestionsPerTest
	}
	return &QuizService{
		questions: q,
		sessions:  s,
		results:   r,
		logger:    logger,
		metrics:   m,
		cfg:       cfg,
	}
}

func requireTeacher(id model.Identity, op string) error {
	if !id.IsTeacher {
		return fmt.Errorf("%s: user %s: %w", op, id.UserID, model.ErrPermissionDenied)
	}
	return nil
}

// AddQuestion добавляет вопрос в банк (только преподаватель)
func (s *QuizService) AddQuestion(ctx context.Context, id model.Identity, kind model.QuestionKind, prompt string, options []string, correctIndex int) (int64, error) {
	if err := requireTeacher(id, "add question"); err != nil {
		return 0, err
	}
	qid, err := s.questions.Add(ctx, kind, prompt, options, correctIndex)
	if err != nil {
		return 0, err
	}
	s.metrics.QuestionAdded(string(kind))
	return qid, nil
}

// ListQuestions все вопросы банка (только преподаватель)
func (s *QuizService) ListQuestions(ctx context.Context, id model.Identity) ([]model.Question, error) {
	if err := requireTeacher(id, "list questions"); err != nil {
		return nil, err
	}
	return s.questions.List(ctx)
}

// StartTest начинает тест; count <= 0 означает размер по умолчанию
func (s *QuizService) StartTest(ctx context.Context, id model.Identity, count int) (dto.SessionView, error) {
	if count <= 0 {
		count = s.cfg.QuestionsPerTest
	}
	return s.sessions.Start(ctx, id.UserID, id.DisplayName, count)
}

// CurrentQuestion текущий вопрос активного теста
func (s *QuizService) CurrentQuestion(ctx context.Context, id model.Identity) (dto.QuestionView, error) {
	return s.sessions.Current(ctx, id.UserID)
}

// SubmitAnswer ответ на вопрос активного теста
func (s *QuizService) SubmitAnswer(ctx context.Context, id model.Identity, questionID int64, choice int) (dto.AnswerOutcome, error) {
	return s.sessions.Answer(ctx, id.UserID, questionID, choice)
}

// AbandonTest прерывает тест без сохранения результата
func (s *QuizService) AbandonTest(ctx context.Context, id model.Identity) error {
	return s.sessions.Abandon(ctx, id.UserID)
}

// MyResults история результатов вызывающего
func (s *QuizService) MyResults(ctx context.Context, id model.Identity) (dto.UserResultsResponse, error) {
	history, err := s.results.History(ctx, id.UserID)
	if err != nil {
		return dto.UserResultsResponse{}, err
	}
	resp := dto.NewUserResults(id.UserID, history)
	if resp.DisplayName == "" {
		resp.DisplayName = id.DisplayName
	}
	return resp, nil
}

// UserResults история результатов указанного пользователя (только преподаватель)
func (s *QuizService) UserResults(ctx context.Context, id model.Identity, userID string) (dto.UserResultsResponse, error) {
	if err := requireTeacher(id, "user results"); err != nil {
		return dto.UserResultsResponse{}, err
	}
	history, err := s.results.History(ctx, userID)
	if err != nil {
		return dto.UserResultsResponse{}, err
	}
	return dto.NewUserResults(userID, history), nil
}

// AllResults результаты всех пользователей, упорядоченные по ID (только преподаватель)
func (s *QuizService) AllResults(ctx context.Context, id model.Identity) (dto.AllResultsResponse, error) {
	if err := requireTeacher(id, "all results"); err != nil {
		return dto.AllResultsResponse{}, err
	}
	summary, err := s.results.AllUsersSummary(ctx)
	if err != nil {
		return dto.AllResultsResponse{}, err
	}

	ids := results.SortedUserIDs(summary)
	resp := dto.AllResultsResponse{
		TotalUsers: len(ids),
		Users:      make([]dto.UserResultsResponse, 0, len(ids)),
	}
	for _, userID := range ids {
		resp.Users = append(resp.Users, dto.NewUserResults(userID, summary[userID]))
	}
	return resp, nil
}

// ResultsReport пишет PDF‑отчёт по всем результатам (только преподаватель)
func (s *QuizService) ResultsReport(ctx context.Context, id model.Identity, w io.Writer) error {
	if err := requireTeacher(id, "results report"); err != nil {
		return err
	}
	summary, err := s.results.AllUsersSummary(ctx)
	if err != nil {
		return err
	}

	ids := results.SortedUserIDs(summary)
	users := make([]report.UserResults, 0, len(ids))
	for _, userID := range ids {
		u := dto.NewUserResults(userID, summary[userID])
		users = append(users, report.UserResults{
			UserID:      userID,
			DisplayName: u.DisplayName,
			Results:     summary[userID],
		})
	}

	if err := report.WriteResultsPDF(w, users, time.Now(), report.Options{FontDir: s.cfg.ReportFontDir}); err != nil {
		s.logger.Error("failed to write results report", zap.Error(err))
		return err
	}
	return nil
}

// RandomQuestion один случайный вопрос быстрого режима, без привязки к сессии
func (s *QuizService) RandomQuestion(ctx context.Context, id model.Identity) (dto.QuestionView, error) {
	q, err := s.questions.SampleOne(ctx)
	if err != nil {
		return dto.QuestionView{}, err
	}
	return dto.NewQuestionView(q, 1, 1), nil
}

// SubmitQuickAnswer ответ быстрого режима, учитывается в счетчике пользователя
func (s *QuizService) SubmitQuickAnswer(ctx context.Context, id model.Identity, questionID int64, choice int) (dto.QuickOutcome, error) {
	q, err := s.questions.Get(ctx, questionID)
	if err != nil {
		return dto.QuickOutcome{}, err
	}
	return s.sessions.QuickAnswer(id.UserID, q, choice)
}

// MyTally счетчик быстрого режима вызывающего
func (s *QuizService) MyTally(_ context.Context, id model.Identity) model.Tally {
	return s.sessions.Tally(id.UserID)
}
