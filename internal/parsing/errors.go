package parsing

import (
	"errors"
	"net/http"
)

// Domain errors for parsing operations.
var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoCodes           = errors.New("no valid code-description pairs found")
	ErrEmptyFile         = errors.New("file is empty")
)

// MapHTTPStatus maps parsing domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrNoCodes), errors.Is(err, ErrEmptyFile):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
