package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

type resultsFile struct {
	NextID  int64          `json:"next_id"`
	Results []model.Result `json:"results"`
}

// JSONRepository хранит результаты в JSON-файле
type JSONRepository struct {
	filename string
	mu       sync.Mutex
}

// NewJSONRepository создаёт хранилище результатов; отсутствующий файл создается пустым.
func NewJSONRepository(filename string) (*JSONRepository, error) {
	r := &JSONRepository{filename: filename}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if err := r.save(resultsFile{NextID: 1}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *JSONRepository) load() (resultsFile, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return resultsFile{}, storageError(fmt.Sprintf("failed to read file %s", r.filename), err)
	}
	f := resultsFile{NextID: 1}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return resultsFile{}, storageError("failed to unmarshal results", err)
	}
	if f.NextID < 1 {
		f.NextID = 1
	}
	return f, nil
}

func (r *JSONRepository) save(f resultsFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return storageError("failed to marshal results", err)
	}
	if err := os.WriteFile(r.filename, data, 0644); err != nil {
		return storageError(fmt.Sprintf("failed to write file %s", r.filename), err)
	}
	return nil
}

func (r *JSONRepository) Append(_ context.Context, res model.Result) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.load()
	if err != nil {
		return 0, err
	}
	res.ID = f.NextID
	f.NextID++
	f.Results = append(f.Results, res)
	if err := r.save(f); err != nil {
		return 0, err
	}
	return res.ID, nil
}

func (r *JSONRepository) ListByUser(ctx context.Context, userID string) ([]model.Result, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.Result{}
	for _, res := range all {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *JSONRepository) ListAll(_ context.Context) ([]model.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.load()
	if err != nil {
		return nil, err
	}
	if f.Results == nil {
		return []model.Result{}, nil
	}
	return f.Results, nil
}
