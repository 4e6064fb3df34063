package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a structured failure from the backend. Detail carries the
// backend's own message when one was decodable; otherwise the message falls
// back to the HTTP status.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("API error: %d %s", e.Status, http.StatusText(e.Status))
}

// IsUnauthorized reports whether err is a backend 401, i.e. the session
// expired or the token was revoked.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// errorBody is the backend's error envelope. Detail is either a plain string
// or an array of field errors (FastAPI validation style).
type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// fieldError is one element of an array-valued detail.
type fieldError struct {
	Msg string `json:"msg"`
}

// decodeDetail extracts a readable message from a non-2xx response body.
// Returns "" when the body is not the expected envelope.
func decodeDetail(body []byte) string {
	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(envelope.Detail, &message); err == nil {
		return message
	}

	var fields []fieldError
	if err := json.Unmarshal(envelope.Detail, &fields); err == nil {
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			if field.Msg != "" {
				parts = append(parts, field.Msg)
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}
