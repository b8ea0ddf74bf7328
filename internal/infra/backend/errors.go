package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// APIError is a failed backend call. Message is the backend's own text when
// it sent one.
type APIError struct {
	Status  int
	Message string
	cause   error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) StatusCode() int {
	return e.Status
}

func (e *APIError) Unwrap() error {
	return e.cause
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		msg = strings.TrimSpace(payload.Message)
		if msg == "" {
			msg = strings.TrimSpace(payload.Error)
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	if msg == "" {
		msg = "booking service error"
	}
	return &APIError{Status: status, Message: msg}
}

// AsAPIError extracts the backend failure carried by err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Status == http.StatusNotFound
}
