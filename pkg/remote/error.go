// Package remote carries the typed error shared by the external collaborator
// boundaries (sheet sync, AI diagnosis, weather). Callers branch on Kind, not
// on message text.
package remote

import "fmt"

type Kind string

const (
	Unauthorized Kind = "unauthorized"
	RateLimited  Kind = "rate_limited"
	BadRequest   Kind = "bad_request"
	Unknown      Kind = "unknown"
)

type Error struct {
	Kind    Kind
	Status  int    // HTTP status when one was received, 0 otherwise
	Message string // remote error message when available
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote: %s (status %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("remote: %s: %s", e.Kind, e.Message)
}

// Classify maps an HTTP status to an error kind.
func Classify(status int) Kind {
	switch status {
	case 401, 403:
		return Unauthorized
	case 429:
		return RateLimited
	case 400:
		return BadRequest
	default:
		return Unknown
	}
}

// StatusError builds an Error from a response status and remote message.
func StatusError(status int, message string) *Error {
	return &Error{Kind: Classify(status), Status: status, Message: message}
}

// NetError wraps a transport-level failure (no HTTP status available).
func NetError(err error) *Error {
	return &Error{Kind: Unknown, Message: err.Error()}
}
