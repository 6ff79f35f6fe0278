package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func sampleSession(userID string) model.Session {
	return model.Session{
		ID:          "s-" + userID,
		UserID:      userID,
		DisplayName: "Анна",
		Questions: []model.Question{
			{ID: 1, Kind: model.KindTrueFalse, Prompt: "q1", Options: model.TrueFalseOptions, CorrectIndex: 0},
			{ID: 2, Kind: model.KindMultipleChoice, Prompt: "q2", Options: []string{"a", "b", "c"}, CorrectIndex: 2},
		},
		Cursor:    1,
		Score:     1,
		AnswerLog: []model.AnswerRecord{{QuestionID: 1, ChosenIndex: 0, IsCorrect: true}},
		StartedAt: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func checkStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "u1"); err != nil || ok {
		t.Fatalf("Пустое хранилище вернуло ok=%v, err=%v", ok, err)
	}

	if err := store.Set(ctx, sampleSession("u1")); err != nil {
		t.Fatalf("Set вернул ошибку: %v", err)
	}
	got, ok, err := store.Get(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v, err=%v", ok, err)
	}
	if got.Cursor != 1 || got.Score != 1 || len(got.Questions) != 2 || len(got.AnswerLog) != 1 || got.Questions[1].CorrectIndex != 2 {
		t.Errorf("Сессия восстановлена неверно: %+v", got)
	}

	if err := store.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete вернул ошибку: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "u1"); ok {
		t.Error("Сессия не удалена")
	}
	if err := store.Delete(ctx, "u1"); err != nil {
		t.Errorf("Повторный Delete вернул ошибку: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	checkStore(t, NewMemoryStore())
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := sampleSession("u1")
	store.Set(ctx, s)

	s.Questions[0].Prompt = "изменено"
	got, _, _ := store.Get(ctx, "u1")
	if got.Questions[0].Prompt != "q1" {
		t.Errorf("Изменение после Set повлияло на хранилище: %q", got.Questions[0].Prompt)
	}
}

func TestJSONStore(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "sessions.json")
	store, err := NewJSONStore(filename)
	if err != nil {
		t.Fatalf("NewJSONStore вернул ошибку: %v", err)
	}
	checkStore(t, store)

	// Сессия переживает переоткрытие файла
	store.Set(context.Background(), sampleSession("u2"))
	reopened, err := NewJSONStore(filename)
	if err != nil {
		t.Fatalf("NewJSONStore вернул ошибку: %v", err)
	}
	if _, ok, err := reopened.Get(context.Background(), "u2"); err != nil || !ok {
		t.Errorf("Сессия не найдена после переоткрытия: ok=%v, err=%v", ok, err)
	}
}
