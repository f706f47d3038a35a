package util

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity is a message severity, patterned after RFC 5424
type Severity int

// Severity levels in decreasing order of urgency
const (
	EMERGENCY Severity = iota
	ALERT
	CRITICAL
	ERROR
	WARNING
	NOTICE
	INFO
	DEBUG
)

// LogContext is an interface for objects that can describe the operation
// being logged
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a LogContext carrying no operation-specific metadata
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return "bf-shoreline-harness"
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// LogAuditInput is the set of fields for a single audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

var logger = newLogger()

func newLogger() *zap.SugaredLogger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	zl, err := config.Build()
	if err != nil {
		panic(err)
	}
	return zl.Sugar()
}

func contextFields(context LogContext) []interface{} {
	return []interface{}{"app", context.AppName(), "session", context.SessionID()}
}

// LogInfo logs an informational message
func LogInfo(context LogContext, message string) {
	logger.Infow(message, contextFields(context)...)
}

// LogAlert logs a message that needs operator attention
func LogAlert(context LogContext, message string) {
	logger.Warnw(message, contextFields(context)...)
}

// LogSimpleErr logs a message and its underlying error, and returns an error
// combining the two for the caller to propagate
func LogSimpleErr(context LogContext, message string, err error) error {
	logger.Errorw(message, append(contextFields(context), "error", err)...)
	return fmt.Errorf("%s: %v", message, err)
}

// LogAudit logs a single actor/action/actee audit entry
func LogAudit(context LogContext, input LogAuditInput) {
	fields := append(contextFields(context),
		"actor", input.Actor, "action", input.Action, "actee", input.Actee)
	switch {
	case input.Severity <= ERROR:
		logger.Errorw(input.Message, fields...)
	case input.Severity <= NOTICE:
		logger.Warnw(input.Message, fields...)
	default:
		logger.Infow(input.Message, fields...)
	}
}

// PsuUUID generates a pseudorandom UUID string
func PsuUUID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
