package classify

import (
	"errors"
	"net/http"
)

// ErrInvalidTask indicates a task value outside jurisdiction or counterparty.
var ErrInvalidTask = errors.New("task must be jurisdiction or counterparty")

// MapHTTPStatus maps classification domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidTask) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
