package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/results/repository"
	"github.com/IT-Nick/quizbot/internal/infra/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

// flakyRepository отказывает первые failures вызовов Append
type flakyRepository struct {
	*repository.MemoryRepository
	failures int
	calls    int
	err      error
}

func (r *flakyRepository) Append(ctx context.Context, res model.Result) (int64, error) {
	r.calls++
	if r.calls <= r.failures {
		return 0, r.err
	}
	return r.MemoryRepository.Append(ctx, res)
}

func newService(repo repository.Repository, attempts int) *ResultService {
	return NewResultService(repo, zap.NewNop(), nil, RetryPolicy{Attempts: attempts})
}

func TestRecordValidation(t *testing.T) {
	s := newService(repository.NewMemoryRepository(), 1)
	ctx := context.Background()

	for _, c := range []struct{ score, total int }{{6, 5}, {-1, 5}, {0, -1}} {
		if _, err := s.Record(ctx, "u1", "Анна", c.score, c.total, time.Now()); !errors.Is(err, model.ErrValidation) {
			t.Errorf("Record(%d, %d): ожидалась ErrValidation, получено %v", c.score, c.total, err)
		}
	}

	// Пустой тест допустим
	if _, err := s.Record(ctx, "u1", "Анна", 0, 0, time.Now()); err != nil {
		t.Errorf("Record(0, 0) вернул ошибку: %v", err)
	}
}

func TestRecordRetriesStorageFailure(t *testing.T) {
	repo := &flakyRepository{
		MemoryRepository: repository.NewMemoryRepository(),
		failures:         2,
		err:              fmt.Errorf("disk: %w", model.ErrStorageFailure),
	}
	m := metrics.New(prometheus.NewRegistry())
	s := NewResultService(repo, zap.NewNop(), m, RetryPolicy{Attempts: 3})

	id, err := s.Record(context.Background(), "u1", "Анна", 4, 5, time.Now())
	if err != nil {
		t.Fatalf("Record вернул ошибку: %v", err)
	}
	if id != 1 {
		t.Errorf("Ожидался ID 1, получен %d", id)
	}
	if repo.calls != 3 {
		t.Errorf("Ожидалось 3 попытки, было %d", repo.calls)
	}
	if got := testutil.ToFloat64(m.RecordFailures); got != 2 {
		t.Errorf("Счётчик сбоев = %v, ожидалось 2", got)
	}
}

func TestRecordGivesUp(t *testing.T) {
	repo := &flakyRepository{
		MemoryRepository: repository.NewMemoryRepository(),
		failures:         10,
		err:              fmt.Errorf("disk: %w", model.ErrStorageFailure),
	}
	s := newService(repo, 3)

	_, err := s.Record(context.Background(), "u1", "Анна", 4, 5, time.Now())
	if !errors.Is(err, model.ErrStorageFailure) {
		t.Fatalf("Ожидалась ErrStorageFailure, получено %v", err)
	}
	if repo.calls != 3 {
		t.Errorf("Ожидалось 3 попытки, было %d", repo.calls)
	}
}

func TestRecordDoesNotRetryOtherErrors(t *testing.T) {
	repo := &flakyRepository{
		MemoryRepository: repository.NewMemoryRepository(),
		failures:         10,
		err:              errors.New("boom"),
	}
	s := newService(repo, 3)

	if _, err := s.Record(context.Background(), "u1", "Анна", 1, 5, time.Now()); err == nil {
		t.Fatal("Ожидалась ошибка")
	}
	if repo.calls != 1 {
		t.Errorf("Ошибка не хранилища не должна повторяться, попыток: %d", repo.calls)
	}
}

func TestHistoryOrder(t *testing.T) {
	ctx := context.Background()
	s := newService(repository.NewMemoryRepository(), 1)
	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	// Добавляем не по порядку времени
	s.Record(ctx, "u1", "Анна", 2, 5, base.Add(2*time.Hour))
	s.Record(ctx, "u1", "Анна", 5, 5, base)
	s.Record(ctx, "u2", "Борис", 1, 5, base.Add(time.Hour))

	h, err := s.History(ctx, "u1")
	if err != nil {
		t.Fatalf("History вернул ошибку: %v", err)
	}
	if len(h) != 2 || h[0].Score != 5 || h[1].Score != 2 {
		t.Errorf("History вернул неверный порядок: %+v", h)
	}

	empty, err := s.History(ctx, "nobody")
	if err != nil {
		t.Fatalf("History вернул ошибку: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Ожидалась пустая история, получено %+v", empty)
	}
}

func TestAllUsersSummary(t *testing.T) {
	ctx := context.Background()
	s := newService(repository.NewMemoryRepository(), 1)
	now := time.Now()

	s.Record(ctx, "u2", "Борис", 3, 5, now)
	s.Record(ctx, "u1", "Анна", 4, 5, now)
	s.Record(ctx, "u2", "Борис", 5, 5, now.Add(time.Minute))

	summary, err := s.AllUsersSummary(ctx)
	if err != nil {
		t.Fatalf("AllUsersSummary вернул ошибку: %v", err)
	}
	if len(summary) != 2 || len(summary["u2"]) != 2 || len(summary["u1"]) != 1 {
		t.Errorf("Неверная сводка: %+v", summary)
	}
	ids := SortedUserIDs(summary)
	if len(ids) != 2 || ids[0] != "u1" || ids[1] != "u2" {
		t.Errorf("SortedUserIDs = %v", ids)
	}
}

func TestRecordTruncatesToMinute(t *testing.T) {
	ctx := context.Background()
	s := newService(repository.NewMemoryRepository(), 1)
	ts := time.Date(2024, 1, 2, 3, 4, 59, 999, time.Local)

	s.Record(ctx, "u1", "Анна", 1, 2, ts)
	h, _ := s.History(ctx, "u1")
	if len(h) != 1 || h[0].Date() != "2024-01-02 03:04" {
		t.Errorf("Ожидалась дата 2024-01-02 03:04, получено %+v", h)
	}
}

func TestPercentageAndGrade(t *testing.T) {
	cases := []struct {
		score, total int
		pct          float64
		grade        string
	}{
		{0, 0, 0, model.GradeNeedsReview},
		{5, 5, 100, model.GradeExcellent},
		{4, 5, 80, model.GradeExcellent},
		{3, 5, 60, model.GradeVeryGood},
		{1, 2, 50, model.GradeAcceptable},
		{2, 5, 40, model.GradeNeedsReview},
	}
	for _, c := range cases {
		pct := model.Percentage(c.score, c.total)
		if math.Abs(pct-c.pct) > 1e-9 {
			t.Errorf("Percentage(%d, %d) = %v, ожидалось %v", c.score, c.total, pct, c.pct)
		}
		if g := model.GradeBand(pct); g != c.grade {
			t.Errorf("GradeBand(%v) = %q, ожидалось %q", pct, g, c.grade)
		}
	}
}
