package feedback

import (
	"errors"
	"net/http"

	"github.com/meridian-legal/counsel/pkg/storage"
)

// Domain errors for feedback operations.
var (
	ErrNotFound     = errors.New("feedback not found")
	ErrEmptyMessage = errors.New("category and message are required")
)

// MapHTTPStatus maps feedback domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyMessage) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
