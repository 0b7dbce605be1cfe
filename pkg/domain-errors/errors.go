// Package domainerrors defines the error vocabulary that crosses package
// boundaries. Services return these; the HTTP layer translates them into
// status codes and JSON envelopes without inspecting error strings.
package domainerrors

import "net/http"

// Code identifies an error class. The string value is the wire-level error
// code returned to clients.
type Code string

const (
	CodeBadRequest  Code = "bad_request"
	CodeValidation  Code = "validation_error"
	CodeNotFound    Code = "not_found"
	CodeUnavailable Code = "service_unavailable"
	CodeInternal    Code = "internal_error"
)

// Error carries a code plus a human-readable description. The description is
// safe to show to clients for every code except CodeInternal.
type Error struct {
	Code        Code
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Description
}

// New builds a domain error with the given code and description.
func New(code Code, description string) *Error {
	return &Error{Code: code, Description: description}
}

// ToHTTPStatus maps an error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
