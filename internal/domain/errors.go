package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid identifier")
)

// Error pairs one of the sentinel kinds above with the message returned to
// API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Invalid reports a request that failed validation.
func Invalid(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NotFound reports a request whose target document does not exist.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// ClientMessage extracts the client facing message carried by err, if any.
func ClientMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}
