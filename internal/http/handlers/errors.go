package handlers

import (
	"errors"
	"net/http"

	"crowdcube/internal/domain"
)

var (
	errInvalidBody = domain.Invalid("Invalid request body.")
	errNotObject   = domain.Invalid("Invalid request body.")
)

type errorResponse struct {
	Error string `json:"error"`
}

func (a *App) error(w http.ResponseWriter, code int, message string) {
	a.json(w, code, errorResponse{Error: message})
}

// statusFor classifies err into the HTTP status of its kind. Anything that is
// neither a validation nor a not-found error is an infrastructure failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail logs err and writes the matching {error} response. Validation and
// not-found errors carry their own client message; infrastructure errors are
// reported with fallback so driver details never reach the client.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	message := fallback
	if status != http.StatusInternalServerError {
		if msg, ok := domain.ClientMessage(err); ok {
			message = msg
		}
	}

	l := a.logger(r)
	event := l.Warn()
	if status == http.StatusInternalServerError {
		event = l.Error()
	}
	event.Err(err).
		Int("status", status).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(fallback)

	a.error(w, status, message)
}
