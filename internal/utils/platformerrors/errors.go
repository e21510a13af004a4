package platformerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of a gateway error
type ErrorType string

const (
	// ErrorTypeConfig means no credential could be resolved; the upstream
	// API was never contacted.
	ErrorTypeConfig ErrorType = "CONFIG"
	// ErrorTypeTransport means the upstream API could not be reached
	// (network failure or timeout).
	ErrorTypeTransport ErrorType = "TRANSPORT"
	// ErrorTypeAPI means the upstream API answered with status >= 400.
	ErrorTypeAPI ErrorType = "API"
	// ErrorTypeValidation means a local precondition failed before any
	// request was built.
	ErrorTypeValidation ErrorType = "VALIDATION"
	// ErrorTypeInternal covers everything else.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// GatewayError carries the error category plus, for API errors, the
// upstream HTTP status code.
type GatewayError struct {
	Type    ErrorType
	Message string
	Status  int
	Err     error
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// New creates a GatewayError of the given type
func New(errorType ErrorType, message string) *GatewayError {
	return &GatewayError{Type: errorType, Message: message}
}

// Wrap creates a GatewayError of the given type around an underlying error
func Wrap(errorType ErrorType, message string, err error) *GatewayError {
	return &GatewayError{Type: errorType, Message: message, Err: err}
}

// NewAPI creates an API error carrying the upstream status code and the
// message extracted from the upstream response body.
func NewAPI(status int, message string) *GatewayError {
	return &GatewayError{Type: ErrorTypeAPI, Message: message, Status: status}
}

// IsType checks if an error is a GatewayError with the specified type
func IsType(err error, errorType ErrorType) bool {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Type == errorType
	}
	return false
}

// ToolResultMessage renders an error as the descriptive string returned
// across the tool boundary. Tool callers always receive a well-formed text
// result, never a protocol-level failure.
func ToolResultMessage(err error) string {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		if gatewayErr.Type == ErrorTypeAPI {
			return fmt.Sprintf("Error (%d): %s", gatewayErr.Status, gatewayErr.Message)
		}
		return fmt.Sprintf("Error: %s", gatewayErr.Message)
	}
	return fmt.Sprintf("Unexpected error: %s", err.Error())
}

// ErrorTypeToHTTPStatus maps error types to HTTP status codes for the
// non-MCP surface (method guard replies).
func ErrorTypeToHTTPStatus(errorType ErrorType) int {
	switch errorType {
	case ErrorTypeValidation:
		return http.StatusBadRequest
	case ErrorTypeConfig:
		return http.StatusInternalServerError
	case ErrorTypeTransport, ErrorTypeAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
