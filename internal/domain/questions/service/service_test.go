package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/questions/repository"
	"go.uber.org/zap"
)

// newTestService создаёт сервис с n вопросами с выбором ответа
func newTestService(t *testing.T, n int) *QuestionService {
	t.Helper()
	s := NewQuestionService(repository.NewMemoryRepository(), zap.NewNop())
	for i := 0; i < n; i++ {
		if _, err := s.Add(context.Background(), model.KindMultipleChoice, "Вопрос", []string{"Да", "Нет", "Не уверен"}, i%3); err != nil {
			t.Fatalf("Add вернул ошибку: %v", err)
		}
	}
	return s
}

func TestAddGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, 0)

	id, err := s.Add(ctx, model.KindMultipleChoice, "  2+2?  ", []string{"3", "4"}, 1)
	if err != nil {
		t.Fatalf("Add вернул ошибку: %v", err)
	}
	q, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get вернул ошибку: %v", err)
	}
	if q.Prompt != "2+2?" || q.Kind != model.KindMultipleChoice || q.CorrectIndex != 1 || len(q.Options) != 2 {
		t.Errorf("Получен неожиданный вопрос: %+v", q)
	}

	id2, err := s.Add(ctx, model.KindTrueFalse, "Небо синее", nil, model.TrueFalseIndex(true))
	if err != nil {
		t.Fatalf("Add вернул ошибку: %v", err)
	}
	if id2 <= id {
		t.Errorf("ID должны расти: %d, затем %d", id, id2)
	}
	tf, err := s.Get(ctx, id2)
	if err != nil {
		t.Fatalf("Get вернул ошибку: %v", err)
	}
	if len(tf.Options) != 2 || tf.Options[0] != "true" || tf.Options[1] != "false" || tf.CorrectIndex != 0 {
		t.Errorf("Вопрос true/false сохранён неверно: %+v", tf)
	}
}

func TestGetNotFound(t *testing.T) {
	s := newTestService(t, 1)
	if _, err := s.Get(context.Background(), 42); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("Ожидалась ErrNotFound, получено %v", err)
	}
}

func TestAddValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, 0)

	cases := []struct {
		name    string
		kind    model.QuestionKind
		prompt  string
		options []string
		correct int
	}{
		{"пустой текст", model.KindMultipleChoice, "   ", []string{"a", "b"}, 0},
		{"один вариант", model.KindMultipleChoice, "q", []string{"a"}, 0},
		{"пустой вариант", model.KindMultipleChoice, "q", []string{"a", " "}, 0},
		{"индекс за пределами", model.KindMultipleChoice, "q", []string{"a", "b"}, 2},
		{"отрицательный индекс", model.KindMultipleChoice, "q", []string{"a", "b"}, -1},
		{"неверные варианты true/false", model.KindTrueFalse, "q", []string{"yes", "no"}, 0},
		{"индекс true/false", model.KindTrueFalse, "q", nil, 2},
		{"неизвестный тип", model.QuestionKind("essay"), "q", []string{"a", "b"}, 0},
	}
	for _, c := range cases {
		if _, err := s.Add(ctx, c.kind, c.prompt, c.options, c.correct); !errors.Is(err, model.ErrValidation) {
			t.Errorf("%s: ожидалась ErrValidation, получено %v", c.name, err)
		}
	}

	if n, _ := s.Count(ctx); n != 0 {
		t.Errorf("Невалидные вопросы не должны сохраняться, в банке %d", n)
	}
}

func TestListInsertionOrder(t *testing.T) {
	s := newTestService(t, 4)
	qs, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List вернул ошибку: %v", err)
	}
	for i := 1; i < len(qs); i++ {
		if qs[i-1].ID >= qs[i].ID {
			t.Errorf("Нарушен порядок добавления: %d перед %d", qs[i-1].ID, qs[i].ID)
		}
	}
}

func TestSampleDistinct(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, 10)

	for _, n := range []int{1, 5, 10, 15} {
		qs, err := s.Sample(ctx, n)
		if err != nil {
			t.Fatalf("Sample(%d) вернул ошибку: %v", n, err)
		}
		want := n
		if want > 10 {
			want = 10
		}
		if len(qs) != want {
			t.Errorf("Sample(%d): ожидалось %d вопросов, получено %d", n, want, len(qs))
		}
		seen := make(map[int64]bool)
		for _, q := range qs {
			if seen[q.ID] {
				t.Errorf("Sample(%d): вопрос %d повторяется", n, q.ID)
			}
			seen[q.ID] = true
		}
	}
}

func TestSampleZero(t *testing.T) {
	s := newTestService(t, 3)
	qs, err := s.Sample(context.Background(), 0)
	if err != nil {
		t.Fatalf("Sample(0) вернул ошибку: %v", err)
	}
	if len(qs) != 0 {
		t.Errorf("Sample(0) вернул %d вопросов", len(qs))
	}
}

func TestSampleEmptyBank(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, 0)
	if _, err := s.Sample(ctx, 5); !errors.Is(err, model.ErrEmptyBank) {
		t.Errorf("Sample: ожидалась ErrEmptyBank, получено %v", err)
	}
	if _, err := s.SampleOne(ctx); !errors.Is(err, model.ErrEmptyBank) {
		t.Errorf("SampleOne: ожидалась ErrEmptyBank, получено %v", err)
	}
}

func TestSampleDeterministicRand(t *testing.T) {
	// intn всегда 0: частичный Фишер–Йейтс оставляет порядок банка
	s := newTestService(t, 5).WithRand(func(int) int { return 0 })
	qs, err := s.Sample(context.Background(), 3)
	if err != nil {
		t.Fatalf("Sample вернул ошибку: %v", err)
	}
	for i, q := range qs {
		if q.ID != int64(i+1) {
			t.Errorf("Позиция %d: ожидался вопрос %d, получен %d", i, i+1, q.ID)
		}
	}

	one, err := s.SampleOne(context.Background())
	if err != nil {
		t.Fatalf("SampleOne вернул ошибку: %v", err)
	}
	if one.ID != 1 {
		t.Errorf("SampleOne: ожидался вопрос 1, получен %d", one.ID)
	}
}

func TestSampleDoesNotMutateBank(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, 5)
	qs, err := s.Sample(ctx, 5)
	if err != nil {
		t.Fatalf("Sample вернул ошибку: %v", err)
	}
	qs[0].Prompt = "изменено"
	qs[0].Options[0] = "изменено"

	list, _ := s.List(ctx)
	for _, q := range list {
		if q.Prompt == "изменено" || q.Options[0] == "изменено" {
			t.Fatalf("Изменение выборки повлияло на банк: %+v", q)
		}
	}
}
