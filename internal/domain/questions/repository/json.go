package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

type questionsFile struct {
	NextID    int64            `json:"next_id"`
	Questions []model.Question `json:"questions"`
}

// JSONRepository хранит банк вопросов в JSON-файле.
// Файл перечитывается на каждую операцию, запись идет под тем же мьютексом.
type JSONRepository struct {
	filename string
	mu       sync.Mutex
}

// NewJSONRepository создаёт хранилище; если файла нет, он будет создан с пустой структурой.
func NewJSONRepository(filename string) (*JSONRepository, error) {
	r := &JSONRepository{filename: filename}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if err := r.save(questionsFile{NextID: 1}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *JSONRepository) load() (questionsFile, error) {
	data, err := os.ReadFile(r.filename)
	if err != nil {
		return questionsFile{}, storageError(fmt.Sprintf("failed to read file %s", r.filename), err)
	}
	f := questionsFile{NextID: 1}
	if len(data) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return questionsFile{}, storageError("failed to unmarshal questions", err)
	}
	if f.NextID < 1 {
		f.NextID = 1
	}
	return f, nil
}

func (r *JSONRepository) save(f questionsFile) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return storageError("failed to marshal questions", err)
	}
	if err := os.WriteFile(r.filename, data, 0644); err != nil {
		return storageError(fmt.Sprintf("failed to write file %s", r.filename), err)
	}
	return nil
}

func (r *JSONRepository) Insert(_ context.Context, q model.Question) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.load()
	if err != nil {
		return 0, err
	}
	q = q.Clone()
	q.ID = f.NextID
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	f.NextID++
	f.Questions = append(f.Questions, q)
	if err := r.save(f); err != nil {
		return 0, err
	}
	return q.ID, nil
}

func (r *JSONRepository) GetByID(_ context.Context, id int64) (model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.load()
	if err != nil {
		return model.Question{}, err
	}
	for _, q := range f.Questions {
		if q.ID == id {
			return q, nil
		}
	}
	return model.Question{}, fmt.Errorf("question %d: %w", id, model.ErrNotFound)
}

func (r *JSONRepository) List(_ context.Context) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.load()
	if err != nil {
		return nil, err
	}
	if f.Questions == nil {
		return []model.Question{}, nil
	}
	return f.Questions, nil
}

func (r *JSONRepository) Count(ctx context.Context) (int, error) {
	qs, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(qs), nil
}
