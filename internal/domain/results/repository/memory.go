package repository

import (
	"context"
	"sync"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// MemoryRepository in‑memory хранилище результатов
type MemoryRepository struct {
	mu      sync.RWMutex
	results []model.Result
	nextID  int64
}

// NewMemoryRepository создаёт пустое хранилище результатов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Append(_ context.Context, res model.Result) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = r.nextID
	r.nextID++
	r.results = append(r.results, res)
	return res.ID, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []model.Result{}
	for _, res := range r.results {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]model.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Result{}, r.results...), nil
}
