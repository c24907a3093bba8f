package notify

import (
	"errors"
	"net/http"
)

// Error kinds. Match with errors.Is.
var (
	ErrValidation    = errors.New("notify: validation error")
	ErrConfiguration = errors.New("notify: configuration error")
	ErrProvider      = errors.New("notify: provider error")
)

// Client-facing messages.
const (
	MsgEmailRequired   = "Email is required"
	MsgInvalidEmail    = "Invalid email format"
	MsgNotConfigured   = "Email service not configured"
	MsgUnknownError    = "Unknown error occurred"
	MsgAddedToWaitlist = "You have been added to our notification list!"
)

// DefaultSubject is the subject line of the launch notification.
const DefaultSubject = "API Flow Studio Launch Notification"

const launchNotificationTag = "launch-notification"

// Error is returned by Service.Notify for every expected failure. Message is
// safe to show to the caller; Code is the HTTP status it maps to.
type Error struct {
	Kind    error
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func validationError(msg string, cause error) *Error {
	return &Error{Kind: ErrValidation, Code: http.StatusBadRequest, Message: msg, Err: cause}
}

func configurationError(cause error) *Error {
	return &Error{Kind: ErrConfiguration, Code: http.StatusInternalServerError, Message: MsgNotConfigured, Err: cause}
}

// providerError keeps the provider's message verbatim.
func providerError(cause error) *Error {
	msg := cause.Error()
	if msg == "" {
		msg = MsgUnknownError
	}
	return &Error{Kind: ErrProvider, Code: http.StatusInternalServerError, Message: msg, Err: cause}
}
