package models

import (
	"errors"
	"fmt"
)

// APIError represents a standardized error response for the console API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Remote backend errors
	ErrUpstreamUnreachable = "UPSTREAM_UNREACHABLE"
	ErrUpstreamRejected    = "UPSTREAM_REJECTED"

	// Screen-specific errors
	ErrToppingNotFound = "TOPPING_NOT_FOUND"
	ErrPizzaNotFound   = "PIZZA_NOT_FOUND"
	ErrNotEditing      = "NOT_EDITING"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// ErrorKind discriminates the three failure families a catalog operation can produce
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindTransport
	KindServer
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// ValidationError is raised locally before any request is issued
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TransportError means the request never produced an HTTP response we could use:
// the host was unreachable, the deadline expired or the body could not be decoded.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response. Body holds the response text verbatim.
type ServerError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: server responded with status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: server responded with status %d: %s", e.Op, e.StatusCode, e.Body)
}

// KindOf reports which family err belongs to
func KindOf(err error) ErrorKind {
	var validationErr *ValidationError
	var transportErr *TransportError
	var serverErr *ServerError
	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &validationErr):
		return KindValidation
	case errors.As(err, &serverErr):
		return KindServer
	case errors.As(err, &transportErr):
		return KindTransport
	default:
		return KindUnknown
	}
}
