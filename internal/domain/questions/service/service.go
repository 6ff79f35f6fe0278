package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/questions/repository"
	"go.uber.org/zap"
)

// QuestionService банк вопросов: валидация, добавление и случайная выборка
type QuestionService struct {
	repo   repository.Repository
	logger *zap.Logger
	intn   func(n int) int
}

// NewQuestionService создает новый экземпляр QuestionService
func NewQuestionService(repo repository.Repository, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		repo:   repo,
		logger: logger,
		intn:   rand.IntN,
	}
}

// WithRand подменяет источник случайных чисел (для тестов)
func (s *QuestionService) WithRand(intn func(n int) int) *QuestionService {
	s.intn = intn
	return s
}

// Add проверяет и сохраняет вопрос, возвращает назначенный ID
func (s *QuestionService) Add(ctx context.Context, kind model.QuestionKind, prompt string, options []string, correctIndex int) (int64, error) {
	q, err := NewQuestion(kind, prompt, options, correctIndex)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("failed to add question: %w", err)
	}

	s.logger.Info("question added",
		zap.Int64("question_id", id),
		zap.String("kind", string(kind)),
		zap.Int("options", len(q.Options)),
	)
	return id, nil
}

// Get получает вопрос по ID
func (s *QuestionService) Get(ctx context.Context, id int64) (model.Question, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Question{}, fmt.Errorf("failed to get question: %w", err)
	}
	return q, nil
}

// List возвращает все вопросы в порядке добавления
func (s *QuestionService) List(ctx context.Context) ([]model.Question, error) {
	qs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return qs, nil
}

// Count возвращает размер банка
func (s *QuestionService) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return n, nil
}

// Sample выбирает min(n, размер банка) различных вопросов равновероятно, без повторов.
// Порядок результата совпадает с порядком выборки.
func (s *QuestionService) Sample(ctx context.Context, n int) ([]model.Question, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, model.ErrEmptyBank
	}
	if n <= 0 {
		return []model.Question{}, nil
	}
	if n > len(all) {
		n = len(all)
	}

	// Частичный Фишер–Йейтс по снимку банка
	for i := 0; i < n; i++ {
		j := i + s.intn(len(all)-i)
		all[i], all[j] = all[j], all[i]
	}
	return all[:n], nil
}

// SampleOne выбирает один случайный вопрос; вызовы независимы друг от друга
func (s *QuestionService) SampleOne(ctx context.Context) (model.Question, error) {
	all, err := s.List(ctx)
	if err != nil {
		return model.Question{}, err
	}
	if len(all) == 0 {
		return model.Question{}, model.ErrEmptyBank
	}
	return all[s.intn(len(all))], nil
}

// NewQuestion проверяет поля и приводит варианты ответа к единому виду.
// Для true/false пустой список вариантов заменяется на ["true","false"].
func NewQuestion(kind model.QuestionKind, prompt string, options []string, correctIndex int) (model.Question, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return model.Question{}, fmt.Errorf("%w: prompt is empty", model.ErrValidation)
	}

	switch kind {
	case model.KindTrueFalse:
		if len(options) == 0 {
			options = model.TrueFalseOptions
		}
		if !isTrueFalse(options) {
			return model.Question{}, fmt.Errorf("%w: true/false options must be [true false], got %v", model.ErrValidation, options)
		}
		options = model.TrueFalseOptions
	case model.KindMultipleChoice:
		if len(options) < 2 {
			return model.Question{}, fmt.Errorf("%w: multiple choice needs at least 2 options, got %d", model.ErrValidation, len(options))
		}
		for i, o := range options {
			if strings.TrimSpace(o) == "" {
				return model.Question{}, fmt.Errorf("%w: option %d is empty", model.ErrValidation, i+1)
			}
		}
	default:
		return model.Question{}, fmt.Errorf("%w: unknown question kind %q", model.ErrValidation, kind)
	}

	if correctIndex < 0 || correctIndex >= len(options) {
		return model.Question{}, fmt.Errorf("%w: correct index %d out of range [0,%d)", model.ErrValidation, correctIndex, len(options))
	}

	return model.Question{
		Kind:         kind,
		Prompt:       prompt,
		Options:      append([]string(nil), options...),
		CorrectIndex: correctIndex,
	}, nil
}

func isTrueFalse(options []string) bool {
	if len(options) != 2 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(options[0]), "true") &&
		strings.EqualFold(strings.TrimSpace(options[1]), "false")
}
