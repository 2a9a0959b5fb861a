package httpx

import (
	"errors"
	"net/http"
)

// DecodeAndValidate reads a JSON body into dst and runs validate on it. On
// failure it writes the 400 response and returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, validate func() error) bool {
	if err := DecodeJSON(r, dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return false
		}
		JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return false
	}
	if err := validate(); err != nil {
		JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", ValidationDetails(err))
		return false
	}
	return true
}
