package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with an HTTP status code and a client-facing message.
type HTTPError struct {
	Code    int
	Message string
}

func (e HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. An empty message falls back to the
// status text.
func NewHTTPError(code int, message string) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message}
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Message: "Invalid request body"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Message: "Not found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Unsupported media type"}
	ErrInternalServerError  = HTTPError{Code: http.StatusInternalServerError, Message: "An error occurred processing your request"}
)
