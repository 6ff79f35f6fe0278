package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func TestWriteResultsPDF(t *testing.T) {
	ts := time.Date(2024, 2, 3, 4, 5, 0, 0, time.Local)
	users := []UserResults{
		{
			UserID:      "42",
			DisplayName: "Alice",
			Results: []model.Result{
				{UserID: "42", DisplayName: "Alice", Timestamp: ts, Score: 4, Total: 5},
				{UserID: "42", DisplayName: "Alice", Timestamp: ts.Add(time.Hour), Score: 0, Total: 0},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteResultsPDF(&buf, users, ts, Options{}); err != nil {
		t.Fatalf("WriteResultsPDF вернул ошибку: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("Ожидался PDF, получено %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestWriteResultsPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResultsPDF(&buf, nil, time.Now(), Options{FontDir: t.TempDir()}); err != nil {
		t.Fatalf("WriteResultsPDF вернул ошибку: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Пустой отчёт")
	}
}
