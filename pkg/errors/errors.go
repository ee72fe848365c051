package errors

import "net/http"

// HTTPError is an error that knows how it should be reported to a client:
// an application error code, a message and the HTTP status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns an HTTPError reported with 400 Bad Request.
func NewHTTPError(code int, message string) *HTTPError {
	return NewHTTPStatusError(code, message, http.StatusBadRequest)
}

// NewHTTPStatusError returns an HTTPError reported with the given status.
func NewHTTPStatusError(code int, message string, statusCode int) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ValidationError reports an invalid request field.
type ValidationError struct {
	Code    int
	Field   string
	Message string
}

// NewValidationError returns a ValidationError for field.
func NewValidationError(code int, field, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
