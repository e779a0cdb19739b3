package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var ErrEmptyID = errors.New("blog id must be provided")

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	// Message is the server's "error" field, flattened when it is a map of
	// field errors.
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return e
	}

	var msg string
	if err := json.Unmarshal(envelope.Error, &msg); err == nil {
		e.Message = msg
		return e
	}

	var fields map[string]string
	if err := json.Unmarshal(envelope.Error, &fields); err == nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" "+fields[k])
		}
		e.Message = strings.Join(parts, "; ")
	}

	return e
}

// ServerMessage returns the backend's error message carried by err, if any.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsStatus reports whether err is an API error with the given status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// IsUnauthorized reports whether the backend rejected the credentials.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}
