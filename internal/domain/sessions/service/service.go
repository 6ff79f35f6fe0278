package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"github.com/IT-Nick/quizbot/internal/infra/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuestionSampler источник вопросов для новой сессии
type QuestionSampler interface {
	Sample(ctx context.Context, n int) ([]model.Question, error)
}

// ResultRecorder сохраняет итог завершенной сессии
type ResultRecorder interface {
	Record(ctx context.Context, userID, displayName string, score, total int, ts time.Time) (int64, error)
}

// SessionService управляет активными тестами пользователей
type SessionService struct {
	store    repository.Store
	sampler  QuestionSampler
	recorder ResultRecorder
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex

	talliesMu sync.Mutex
	tallies   map[string]model.Tally
}

// NewSessionService создает новый экземпляр SessionService
func NewSessionService(store repository.Store, sampler QuestionSampler, recorder ResultRecorder, logger *zap.Logger, m *metrics.Metrics) *SessionService {
	return &SessionService{
		store:    store,
		sampler:  sampler,
		recorder: recorder,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
		locks:    make(map[string]*sync.Mutex),
		tallies:  make(map[string]model.Tally),
	}
}

// WithClock подменяет часы (для тестов)
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// userLock мьютекс пользователя; все изменения его сессии идут под ним
func (s *SessionService) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[userID] = mu
	}
	return mu
}

// Start начинает новый тест из count случайных вопросов.
// Незавершенная сессия пользователя перезаписывается.
func (s *SessionService) Start(ctx context.Context, userID, displayName string, count int) (dto.SessionView, error) {
	if count <= 0 {
		return dto.SessionView{}, fmt.Errorf("%w: question count must be positive, got %d", model.ErrValidation, count)
	}

	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	questions, err := s.sampler.Sample(ctx, count)
	if err != nil {
		return dto.SessionView{}, fmt.Errorf("failed to sample questions: %w", err)
	}

	sess := model.Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		DisplayName: displayName,
		Questions:   questions,
		AnswerLog:   []model.AnswerRecord{},
		StartedAt:   s.now(),
	}
	if err := s.store.Set(ctx, sess); err != nil {
		return dto.SessionView{}, fmt.Errorf("failed to save session: %w", err)
	}

	s.metrics.SessionStarted()
	s.logger.Info("session started",
		zap.String("user_id", userID),
		zap.String("session_id", sess.ID),
		zap.Int("questions", len(questions)),
	)

	return dto.SessionView{
		SessionID: sess.ID,
		Total:     sess.Total(),
		First:     viewAt(sess),
	}, nil
}

// Current текущий вопрос без изменения состояния
func (s *SessionService) Current(ctx context.Context, userID string) (dto.QuestionView, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.active(ctx, userID)
	if err != nil {
		return dto.QuestionView{}, err
	}
	return viewAt(sess), nil
}

// Answer принимает ответ на вопрос questionID.
// Ответ на уже пройденный вопрос отклоняется с ErrStaleAnswer. При ошибке состояние не меняется.
func (s *SessionService) Answer(ctx context.Context, userID string, questionID int64, chosenIndex int) (dto.AnswerOutcome, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.active(ctx, userID)
	if err != nil {
		return dto.AnswerOutcome{}, err
	}

	q, _ := sess.CurrentQuestion()
	if q.ID != questionID {
		return dto.AnswerOutcome{}, fmt.Errorf("question %d, current %d: %w", questionID, q.ID, model.ErrStaleAnswer)
	}
	if err := checkChoice(q, chosenIndex); err != nil {
		return dto.AnswerOutcome{}, err
	}

	correct := chosenIndex == q.CorrectIndex
	next := sess.Clone()
	next.AnswerLog = append(next.AnswerLog, model.AnswerRecord{
		QuestionID:  q.ID,
		ChosenIndex: chosenIndex,
		IsCorrect:   correct,
	})
	if correct {
		next.Score++
	}
	next.Cursor++

	outcome := dto.AnswerOutcome{
		Kind:          q.Kind,
		IsCorrect:     correct,
		CorrectIndex:  q.CorrectIndex,
		CorrectOption: q.CorrectOption(),
	}

	if !next.Finished() {
		if err := s.store.Set(ctx, next); err != nil {
			return dto.AnswerOutcome{}, fmt.Errorf("failed to save session: %w", err)
		}
		s.metrics.Answer(correct)
		view := viewAt(next)
		outcome.Next = &view
		return outcome, nil
	}

	// Результат пишется до удаления сессии: при сбое пользователь остается на последнем вопросе
	resultID, err := s.recorder.Record(ctx, userID, next.DisplayName, next.Score, next.Total(), s.now())
	if err != nil {
		s.logger.Error("failed to record result, session kept",
			zap.String("user_id", userID),
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
		return dto.AnswerOutcome{}, err
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		s.logger.Error("failed to remove completed session",
			zap.String("user_id", userID),
			zap.String("session_id", sess.ID),
			zap.Error(err),
		)
	}

	s.metrics.Answer(correct)
	s.metrics.SessionCompleted()
	s.logger.Info("session completed",
		zap.String("user_id", userID),
		zap.String("session_id", sess.ID),
		zap.Int("score", next.Score),
		zap.Int("total", next.Total()),
	)

	summary := dto.NewScoreSummary(resultID, next.Score, next.Total())
	outcome.Completed = true
	outcome.Summary = &summary
	return outcome, nil
}

// Abandon удаляет незавершенную сессию без записи результата
func (s *SessionService) Abandon(ctx context.Context, userID string) error {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to abandon session: %w", err)
	}
	s.logger.Info("session abandoned", zap.String("user_id", userID))
	return nil
}

// QuickAnswer проверяет ответ быстрого режима и обновляет счетчик пользователя
func (s *SessionService) QuickAnswer(userID string, q model.Question, chosenIndex int) (dto.QuickOutcome, error) {
	if err := checkChoice(q, chosenIndex); err != nil {
		return dto.QuickOutcome{}, err
	}
	correct := chosenIndex == q.CorrectIndex

	s.talliesMu.Lock()
	t := s.tallies[userID]
	t.Answered++
	if correct {
		t.Correct++
	}
	s.tallies[userID] = t
	s.talliesMu.Unlock()

	s.metrics.Answer(correct)
	return dto.QuickOutcome{
		Kind:          q.Kind,
		IsCorrect:     correct,
		CorrectIndex:  q.CorrectIndex,
		CorrectOption: q.CorrectOption(),
		Tally:         t,
	}, nil
}

// Tally счетчик быстрого режима пользователя
func (s *SessionService) Tally(userID string) model.Tally {
	s.talliesMu.Lock()
	defer s.talliesMu.Unlock()
	return s.tallies[userID]
}

func (s *SessionService) active(ctx context.Context, userID string) (model.Session, error) {
	sess, ok, err := s.store.Get(ctx, userID)
	if err != nil {
		return model.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	if !ok || sess.Finished() {
		return model.Session{}, model.ErrNoActiveSession
	}
	return sess, nil
}

func checkChoice(q model.Question, chosenIndex int) error {
	if chosenIndex < 0 || chosenIndex >= len(q.Options) {
		return fmt.Errorf("%w: choice %d out of range [0,%d)", model.ErrValidation, chosenIndex, len(q.Options))
	}
	return nil
}

func viewAt(sess model.Session) dto.QuestionView {
	q, _ := sess.CurrentQuestion()
	v := dto.NewQuestionView(q, sess.Cursor+1, sess.Total())
	v.SessionID = sess.ID
	return v
}
