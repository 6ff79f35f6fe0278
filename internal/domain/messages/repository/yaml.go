package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// YAMLRepository тексты из YAML-файла вида key: text. Файл читается один раз.
type YAMLRepository struct {
	messages map[string]string
}

// NewYAMLRepository загружает каталог; отсутствующий файл дает пустой каталог.
func NewYAMLRepository(filename string) (*YAMLRepository, error) {
	r := &YAMLRepository{messages: map[string]string{}}
	if filename == "" {
		return r, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read messages %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &r.messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages %s: %w", filename, err)
	}
	if r.messages == nil {
		r.messages = map[string]string{}
	}
	return r, nil
}

func (r *YAMLRepository) GetMessageByKey(_ context.Context, messageKey string) (string, error) {
	text, ok := r.messages[messageKey]
	if !ok {
		return "", fmt.Errorf("message with key %s: %w", messageKey, model.ErrNotFound)
	}
	return text, nil
}
