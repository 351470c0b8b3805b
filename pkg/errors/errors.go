package errors

import "fmt"

// ErrorType represents different types of errors that can occur
type ErrorType string

const (
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeHTTPStatus ErrorType = "http_status"
	ErrorTypeParsing    ErrorType = "parsing"
	ErrorTypeFilesystem ErrorType = "filesystem"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// Error represents a pipeline error with type information
type Error struct {
	Type    ErrorType
	Message string
	Code    int
	Err     error
}

func (e *Error) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error (code %d): %s", e.Type, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a typed error wrapping cause
func New(errorType ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    errorType,
		Message: message,
		Err:     cause,
	}
}

// NewStatus creates an error for an unexpected HTTP status code
func NewStatus(code int, url string) *Error {
	return &Error{
		Type:    ErrorTypeHTTPStatus,
		Message: fmt.Sprintf("unexpected status %d for %s", code, url),
		Code:    code,
	}
}

// TypeOf returns the ErrorType of err, or ErrorTypeUnknown for untyped errors
func TypeOf(err error) ErrorType {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Type
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrorTypeUnknown
}

// IsSuccessStatus reports whether an HTTP status code is in the 2xx range
func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
