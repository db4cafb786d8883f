package training

import (
	"errors"
	"net/http"

	"github.com/meridian-legal/counsel/pkg/storage"
)

// Domain errors for training corpus operations.
var (
	ErrNotFound     = errors.New("training example not found")
	ErrNotValidated = errors.New("analysis must carry at least one validation flag")
	ErrEmptyText    = errors.New("document_text is required")
)

// MapHTTPStatus maps training domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrNotValidated) || errors.Is(err, ErrEmptyText) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
