// Package api carries the pieces shared by every handler package:
// error-to-status mapping and the router middleware.
package api

import (
	"errors"
	"net/http"

	"ms-listing/internal/storage"
)

// StatusFromError picks the response status for a storage taxonomy
// error. Anything outside the taxonomy is a 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, storage.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, storage.ErrReferentialIntegrity):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
