// Package apperrors описывает закрытый набор ошибок сервиса.
// Обработчики HTTP сопоставляют их со статус-кодами через errors.As.
package apperrors

import (
	"fmt"
	"strings"
)

// FieldError - ошибка одного поля запроса
type FieldError struct {
	// Loc - путь к полю, например ["body", "2", "severity_index"]
	Loc     []string `json:"loc"`
	Message string   `json:"msg"`
}

// ValidationError - запрос не прошел схему и до модели не дошел
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(f.Loc, "."), f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError создает ошибку валидации с одним полем
func NewValidationError(msg string, loc ...string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Loc: loc, Message: msg}}}
}

// InferenceError - сбой при построении фрейма или вызове модели
type InferenceError struct {
	Op  string
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed during %s: %v", e.Op, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// StartupError - артефакт модели отсутствует или несовместим
type StartupError struct {
	Path string
	Err  error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("failed to load model artifact %s: %v", e.Path, e.Err)
}

func (e *StartupError) Unwrap() error {
	return e.Err
}
