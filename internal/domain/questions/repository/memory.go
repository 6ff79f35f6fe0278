package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// MemoryRepository in‑memory реализация банка вопросов
type MemoryRepository struct {
	mu        sync.RWMutex
	questions []model.Question
	nextID    int64
}

// NewMemoryRepository создает пустой банк вопросов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Insert(_ context.Context, q model.Question) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	q = q.Clone()
	q.ID = r.nextID
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now()
	}
	r.nextID++
	r.questions = append(r.questions, q)
	return q.ID, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			return q.Clone(), nil
		}
	}
	return model.Question{}, fmt.Errorf("question %d: %w", id, model.ErrNotFound)
}

// List возвращает снимок банка; последующие Insert его не меняют
func (r *MemoryRepository) List(_ context.Context) ([]model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Question, len(r.questions))
	for i, q := range r.questions {
		out[i] = q.Clone()
	}
	return out, nil
}

func (r *MemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions), nil
}
