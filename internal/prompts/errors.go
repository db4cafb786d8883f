package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt version operations.
var (
	ErrNotFound         = errors.New("prompt version not found")
	ErrDuplicate        = errors.New("prompt version identifier already exists")
	ErrInsufficientData = errors.New("no validated training examples for task")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInsufficientData) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
