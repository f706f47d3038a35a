package util

import (
	"errors"
	"net/http"
)

// Error is a structured error with separate log-facing and user-facing
// messages, plus optional HTTP exchange details
type Error struct {
	LogMsg     string
	SimpleMsg  string
	Response   string
	URL        string
	HTTPStatus int
}

// Log logs the full error detail, with an optional message prefix, and
// returns an error containing the user-facing message
func (e Error) Log(context LogContext, prefix string) error {
	message := e.LogMsg
	if prefix != "" {
		message = prefix + ": " + message
	}
	fields := contextFields(context)
	if e.URL != "" {
		fields = append(fields, "url", e.URL)
	}
	if e.HTTPStatus != 0 {
		fields = append(fields, "httpStatus", e.HTTPStatus)
	}
	if e.Response != "" {
		fields = append(fields, "response", e.Response)
	}
	logger.Errorw(message, fields...)

	if e.SimpleMsg != "" {
		return errors.New(e.SimpleMsg)
	}
	return errors.New(message)
}

// HTTPErr is an error with an associated HTTP status code
type HTTPErr struct {
	Status  int
	Message string
}

func (err HTTPErr) Error() string {
	return err.Message
}

// HTTPError logs a message and writes it to the response with the given
// status code
func HTTPError(r *http.Request, w http.ResponseWriter, context LogContext, message string, status int) {
	LogAudit(context, LogAuditInput{
		Actor:    r.RemoteAddr,
		Action:   r.Method + " response",
		Actee:    r.URL.String(),
		Message:  message,
		Severity: WARNING,
	})
	http.Error(w, message, status)
}
