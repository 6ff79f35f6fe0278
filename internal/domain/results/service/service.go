package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/results/repository"
	"github.com/IT-Nick/quizbot/internal/infra/metrics"
	"go.uber.org/zap"
)

// RetryPolicy сколько раз и с какой паузой повторять запись результата
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// ResultService сервис результатов тестов
type ResultService struct {
	repo    repository.Repository
	logger  *zap.Logger
	metrics *metrics.Metrics
	retry   RetryPolicy
}

// NewResultService создает новый экземпляр ResultService
func NewResultService(repo repository.Repository, logger *zap.Logger, m *metrics.Metrics, retry RetryPolicy) *ResultService {
	if retry.Attempts < 1 {
		retry.Attempts = 1
	}
	return &ResultService{
		repo:    repo,
		logger:  logger,
		metrics: m,
		retry:   retry,
	}
}

// Record сохраняет результат завершенного теста.
// Повторяется только ошибка хранилища, пауза растет линейно.
func (s *ResultService) Record(ctx context.Context, userID, displayName string, score, total int, ts time.Time) (int64, error) {
	if total < 0 || score < 0 || score > total {
		return 0, fmt.Errorf("%w: score %d of %d", model.ErrValidation, score, total)
	}

	res := model.Result{
		UserID:      userID,
		DisplayName: displayName,
		Timestamp:   ts.Truncate(time.Minute),
		Score:       score,
		Total:       total,
	}

	var lastErr error
	for attempt := 1; attempt <= s.retry.Attempts; attempt++ {
		id, err := s.repo.Append(ctx, res)
		if err == nil {
			s.logger.Info("result recorded",
				zap.String("user_id", userID),
				zap.Int64("result_id", id),
				zap.Int("score", score),
				zap.Int("total", total),
			)
			return id, nil
		}

		lastErr = err
		s.metrics.RecordFailure()
		if !errors.Is(err, model.ErrStorageFailure) {
			break
		}
		s.logger.Warn("failed to record result",
			zap.String("user_id", userID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == s.retry.Attempts {
			break
		}
		if err := sleep(ctx, time.Duration(attempt)*s.retry.Delay); err != nil {
			return 0, fmt.Errorf("failed to record result: %w: %w", model.ErrStorageFailure, err)
		}
	}
	return 0, fmt.Errorf("failed to record result: %w", lastErr)
}

// History результаты пользователя, старые первыми
func (s *ResultService) History(ctx context.Context, userID string) ([]model.Result, error) {
	results, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results for user %s: %w", userID, err)
	}
	sortByTime(results)
	return results, nil
}

// AllUsersSummary результаты всех пользователей, сгруппированные по ID
func (s *ResultService) AllUsersSummary(ctx context.Context) (map[string][]model.Result, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all results: %w", err)
	}

	byUser := make(map[string][]model.Result)
	for _, r := range all {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}
	for _, results := range byUser {
		sortByTime(results)
	}
	return byUser, nil
}

// SortedUserIDs ключи сводки в детерминированном порядке
func SortedUserIDs(summary map[string][]model.Result) []string {
	ids := make([]string, 0, len(summary))
	for id := range summary {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// сортировка устойчивая: при равном времени сохраняется порядок добавления
func sortByTime(results []model.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp.Before(results[j].Timestamp)
	})
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
