package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileOutput(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "quiz.log")
	log, err := New(Options{Level: "info", File: filename, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("New вернул ошибку: %v", err)
	}
	log.Debug("hidden")
	log.Info("session started")
	_ = log.Sync()

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("Не удалось прочитать лог: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"session started"`) {
		t.Errorf("В логе нет записи: %s", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Errorf("Debug-запись попала в лог уровня info: %s", data)
	}
}

func TestInvalidLevel(t *testing.T) {
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Error("Ожидалась ошибка для неизвестного уровня")
	}
}
