package response // package response defines the uniform JSON envelope and error taxonomy

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIResponse is the envelope returned by every endpoint.  Success responses
// carry message and data; failure responses carry message, errorCode and
// optional details.  Fields that do not apply are omitted from the JSON.
type APIResponse struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Data      any            `json:"data,omitempty"`
	ErrorCode Code           `json:"errorCode,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Success builds a success envelope.
func Success(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// OK writes a success envelope through the echo context.
func OK(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, Success(message, data))
}

// APIError is a typed error carrying everything needed to render one failure
// envelope: a stable code, the matching HTTP status, a client-safe message
// and optional structured details.  The wrapped cause, if any, is kept for
// logging only and never serialized.
type APIError struct {
	Code    Code
	Status  int
	Message string
	Details map[string]any
	cause   error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

// Envelope renders the failure envelope for this error.
func (e *APIError) Envelope() APIResponse {
	return APIResponse{
		Success:   false,
		Message:   e.Message,
		ErrorCode: e.Code,
		Details:   e.Details,
	}
}

// NewError builds an APIError from a code and message.  The HTTP status
// comes from the code table; unknown codes collapse to 500.
func NewError(code Code, message string) *APIError {
	return &APIError{Code: code, Status: StatusFor(code), Message: message}
}

// WithDetails attaches structured details and returns the error for chaining.
func (e *APIError) WithDetails(details map[string]any) *APIError {
	e.Details = details
	return e
}

// WithCause attaches an underlying cause and returns the error for chaining.
func (e *APIError) WithCause(err error) *APIError {
	e.cause = err
	return e
}

// FromStatus builds an APIError for a bare HTTP status, picking the matching
// code from the table.  Statuses without a dedicated code collapse to 500
// with the generic message so nothing internal leaks.
func FromStatus(status int, message string) *APIError {
	code, ok := statusCode[status]
	if !ok {
		return NewInternal()
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{Code: code, Status: status, Message: message}
}

const internalMessage = "an unexpected error occurred"

// NewInternal is the single normalization target for everything that is not
// a well-formed API error.
func NewInternal() *APIError {
	return NewError(CodeInternalServerError, internalMessage)
}

func NewBadRequest(message string) *APIError { return NewError(CodeBadRequest, message) }

func NewUnauthorized(message string) *APIError { return NewError(CodeUnauthorized, message) }

func NewForbidden(message string) *APIError { return NewError(CodeForbidden, message) }

func NewNotFound(message string) *APIError { return NewError(CodeNotFound, message) }

func NewConflict(message string) *APIError { return NewError(CodeConflict, message) }

func NewValidation(message string, details map[string]any) *APIError {
	return NewError(CodeValidationError, message).WithDetails(details)
}

func NewTooManyRequests(message string) *APIError {
	return NewError(CodeTooManyRequests, message)
}

func NewServiceUnavailable(message string) *APIError {
	return NewError(CodeServiceUnavailable, message)
}
