package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for transport-level outcomes. Callers match with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// genericFailure is shown when the server reports a failure without a message.
const genericFailure = "request failed"

// Error is a failed API call: either the transport returned a non-2xx status
// or the response envelope carried success=false. Message preferentially holds
// the server-reported message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return "api: " + e.Message
}

// Unwrap maps well-known statuses to sentinels so that callers can write
// errors.Is(err, api.ErrUnauthorized) without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case 401:
		return ErrUnauthorized
	case 403:
		return ErrForbidden
	case 404:
		return ErrNotFound
	}
	return nil
}

// UserMessage extracts the message a view should present for err: the
// server-reported message when available, a generic phrase otherwise.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailure
}
