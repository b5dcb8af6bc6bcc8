package apperrors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Loc: []string{"body", "country"}, Message: "field required"},
		{Loc: []string{"body", "month"}, Message: "must be at most 12"},
	}}
	assert.Equal(t, "validation failed: body.country: field required; body.month: must be at most 12", err.Error())
}

func TestInferenceError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("service: %w", &InferenceError{Op: "predict", Err: cause})

	var inf *InferenceError
	assert.True(t, errors.As(err, &inf))
	assert.Equal(t, "predict", inf.Op)
	assert.ErrorIs(t, err, cause)
}

func TestStartupError_Unwrap(t *testing.T) {
	err := &StartupError{Path: "models/x.json", Err: fs.ErrNotExist}
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "models/x.json")
}
