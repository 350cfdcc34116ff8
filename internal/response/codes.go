package response

import "net/http"

// Code is a stable, machine-readable error identifier carried in the
// errorCode field of the failure envelope.
type Code string

const (
	CodeBadRequest          Code = "BAD_REQUEST"
	CodeUnauthorized        Code = "UNAUTHORIZED"
	CodeForbidden           Code = "FORBIDDEN"
	CodeNotFound            Code = "NOT_FOUND"
	CodeMethodNotAllowed    Code = "METHOD_NOT_ALLOWED"
	CodeConflict            Code = "CONFLICT"
	CodeValidationError     Code = "VALIDATION_ERROR"
	CodeTooManyRequests     Code = "TOO_MANY_REQUESTS"
	CodeInternalServerError Code = "INTERNAL_SERVER_ERROR"
	CodeServiceUnavailable  Code = "SERVICE_UNAVAILABLE"
)

// codeStatus maps each error code to its HTTP status.  The mapping is 1:1;
// statusCode below is derived from it so both directions stay in sync.
var codeStatus = map[Code]int{
	CodeBadRequest:          http.StatusBadRequest,
	CodeUnauthorized:        http.StatusUnauthorized,
	CodeForbidden:           http.StatusForbidden,
	CodeNotFound:            http.StatusNotFound,
	CodeMethodNotAllowed:    http.StatusMethodNotAllowed,
	CodeConflict:            http.StatusConflict,
	CodeValidationError:     http.StatusUnprocessableEntity,
	CodeTooManyRequests:     http.StatusTooManyRequests,
	CodeInternalServerError: http.StatusInternalServerError,
	CodeServiceUnavailable:  http.StatusServiceUnavailable,
}

var statusCode = func() map[int]Code {
	m := make(map[int]Code, len(codeStatus))
	for c, s := range codeStatus {
		m[s] = c
	}
	return m
}()

// StatusFor returns the HTTP status for a code, or 500 when the code is not
// part of the enumeration.
func StatusFor(c Code) int {
	if s, ok := codeStatus[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// CodeFor returns the error code for an HTTP status, or
// CodeInternalServerError when the status has no dedicated code.
func CodeFor(status int) Code {
	if c, ok := statusCode[status]; ok {
		return c
	}
	return CodeInternalServerError
}
