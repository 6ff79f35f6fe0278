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

// Store хранилище активных сессий, не более одной на пользователя
type Store interface {
	Get(ctx context.Context, userID string) (model.Session, bool, error)
	Set(ctx context.Context, s model.Session) error
	Delete(ctx context.Context, userID string) error
}

// MemoryStore in‑memory реализация.
type MemoryStore struct {
	data map[string]model.Session
	mu   sync.RWMutex
}

// NewMemoryStore создаёт новый MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]model.Session)}
}

func (m *MemoryStore) Get(_ context.Context, userID string) (model.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[userID]
	if !ok {
		return model.Session{}, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStore) Set(_ context.Context, s model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[s.UserID] = s.Clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, userID)
	return nil
}

// JSONStore сохраняет активные сессии в JSON-файл, чтобы тест переживал перезапуск бота.
type JSONStore struct {
	filename string
	mu       sync.Mutex
}

// NewJSONStore создаёт новый JSONStore с указанным файлом.
func NewJSONStore(filename string) (*JSONStore, error) {
	j := &JSONStore{filename: filename}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if err := j.save(make(map[string]model.Session)); err != nil {
			return nil, err
		}
	}
	return j, nil
}

func (j *JSONStore) load() (map[string]model.Session, error) {
	data, err := os.ReadFile(j.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w: %w", j.filename, model.ErrStorageFailure, err)
	}
	if len(data) == 0 {
		return make(map[string]model.Session), nil
	}
	var m map[string]model.Session
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sessions: %w: %w", model.ErrStorageFailure, err)
	}
	if m == nil {
		m = make(map[string]model.Session)
	}
	return m, nil
}

func (j *JSONStore) save(m map[string]model.Session) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sessions: %w: %w", model.ErrStorageFailure, err)
	}
	if err := os.WriteFile(j.filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w: %w", j.filename, model.ErrStorageFailure, err)
	}
	return nil
}

func (j *JSONStore) Get(_ context.Context, userID string) (model.Session, bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return model.Session{}, false, err
	}
	s, ok := m[userID]
	return s, ok, nil
}

func (j *JSONStore) Set(_ context.Context, s model.Session) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return err
	}
	m[s.UserID] = s
	return j.save(m)
}

func (j *JSONStore) Delete(_ context.Context, userID string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	m, err := j.load()
	if err != nil {
		return err
	}
	if _, ok := m[userID]; !ok {
		return nil
	}
	delete(m, userID)
	return j.save(m)
}

// NewStore возвращает реализацию Store в зависимости от типа хранения.
// Сессии короткоживущие, поэтому для postgres и sqlite они держатся в памяти.
func NewStore(storageType, filename string) (Store, error) {
	if storageType == "json" {
		return NewJSONStore(filename)
	}
	return NewMemoryStore(), nil
}
