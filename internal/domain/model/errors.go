package model

import "errors"

// Ошибки ядра. Адаптеры сравнивают их через errors.Is и подбирают текст для пользователя.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrEmptyBank        = errors.New("question bank is empty")
	ErrNoActiveSession  = errors.New("no active session")
	ErrStaleAnswer      = errors.New("stale answer")
	ErrPermissionDenied = errors.New("permission denied")
	ErrStorageFailure   = errors.New("storage failure")
)
