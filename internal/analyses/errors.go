package analyses

import (
	"errors"
	"net/http"

	"github.com/meridian-legal/counsel/pkg/storage"
)

// Domain errors for analysis operations.
var (
	ErrNotFound         = errors.New("analysis not found")
	ErrInvalidInput     = errors.New("user_name, company_name, and document_text are required")
	ErrAlreadyValidated = errors.New("analysis validation flags already set")
)

// MapHTTPStatus maps analysis domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrAlreadyValidated) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
