package agencysdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a failed backend call: the HTTP status plus the most
// specific message the response offered.
type APIError struct {
	// Status is the HTTP status code of the failed response.
	Status int

	// Message is the server-provided message when one was present,
	// otherwise a generic description of the status.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// IsSessionExpired reports whether err is the 401 path: the session has
// already been cleared and the login redirect fired by the time a caller
// sees this. Front ends suppress their usual failure toast for it; the
// redirect is the user-visible signal.
func IsSessionExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// parseAPIError builds an *APIError from a non-2xx response body. The
// backend's error convention is a JSON object with a "message" field;
// bare-text bodies and empty bodies get sensible fallbacks.
func parseAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return &APIError{Status: status, Message: payload.Message}
		}
		if payload.Error != "" {
			return &APIError{Status: status, Message: payload.Error}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return &APIError{Status: status, Message: text}
	}

	return &APIError{Status: status, Message: http.StatusText(status)}
}
