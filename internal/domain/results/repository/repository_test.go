package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/infra/sqlite"
)

func checkRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.Local)

	records := []model.Result{
		{UserID: "u1", DisplayName: "Анна", Timestamp: ts, Score: 3, Total: 5},
		{UserID: "u2", DisplayName: "Борис", Timestamp: ts.Add(time.Minute), Score: 5, Total: 5},
		{UserID: "u1", DisplayName: "Анна", Timestamp: ts.Add(time.Hour), Score: 4, Total: 5},
	}
	var lastID int64
	for _, r := range records {
		id, err := repo.Append(ctx, r)
		if err != nil {
			t.Fatalf("Append вернул ошибку: %v", err)
		}
		if id <= lastID {
			t.Errorf("ID должны расти: %d после %d", id, lastID)
		}
		lastID = id
	}

	u1, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser вернул ошибку: %v", err)
	}
	if len(u1) != 2 || u1[0].Score != 3 || u1[1].Score != 4 {
		t.Errorf("ListByUser(u1) вернул %+v", u1)
	}
	if !u1[0].Timestamp.Equal(ts) {
		t.Errorf("Время сохранено неверно: %v, ожидалось %v", u1[0].Timestamp, ts)
	}

	none, err := repo.ListByUser(ctx, "nobody")
	if err != nil {
		t.Fatalf("ListByUser вернул ошибку: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("Для пользователя без результатов ожидался пустой срез, получено %#v", none)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll вернул ошибку: %v", err)
	}
	if len(all) != 3 || all[1].UserID != "u2" {
		t.Errorf("ListAll вернул %+v", all)
	}
}

func TestMemoryRepository(t *testing.T) {
	checkRepository(t, NewMemoryRepository())
}

func TestJSONRepository(t *testing.T) {
	repo, err := NewJSONRepository(filepath.Join(t.TempDir(), "results.json"))
	if err != nil {
		t.Fatalf("NewJSONRepository вернул ошибку: %v", err)
	}
	checkRepository(t, repo)
}

func TestSQLiteRepository(t *testing.T) {
	db, err := sqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("sqlite.Open вернул ошибку: %v", err)
	}
	defer db.Close()

	checkRepository(t, NewSQLiteRepository(db))
}
