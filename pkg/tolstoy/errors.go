package tolstoy

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ConfigurationError is returned synchronously at construction time when the
// configuration is unusable (e.g. a missing base URL). It is never returned
// by request methods.
type ConfigurationError struct {
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return "tolstoy: configuration error: " + e.Message
}

// APIError represents a single error from the platform API.
type APIError struct {
	Code    string `json:"code"    yaml:"code"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ResponseError represents a non-2xx response from the platform API. The
// named helper methods propagate it unchanged from the underlying handle.
type ResponseError struct {
	StatusCode int        `json:"-"      yaml:"-"`
	Errors     []APIError `json:"errors" yaml:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	return fmt.Sprintf("multiple errors: %v", e.Errors)
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// Common platform error codes.
const (
	ErrorCodeNotFound        = "not_found"
	ErrorCodeUnauthorized    = "unauthorized"
	ErrorCodeForbidden       = "forbidden"
	ErrorCodeValidation      = "validation_error"
	ErrorCodeConflict        = "conflict"
	ErrorCodeTooManyRequests = "rate_limited"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrBaseURLRequired   = errors.New("base URL is required")
	ErrFlowIDRequired    = errors.New("flow ID is required")
	ErrToolIDRequired    = errors.New("tool ID is required")
	ErrActionIDRequired  = errors.New("action ID is required")
	ErrWebhookIDRequired = errors.New("webhook ID is required")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasErrorCode(err, ErrorCodeNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasErrorCode(err, ErrorCodeUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return hasErrorCode(err, ErrorCodeForbidden)
}

func hasErrorCode(err error, code string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		first := errResp.FirstError()
		if first != nil {
			return first.Code == code
		}
	}

	return false
}

// ParseResponseError parses an error response envelope from JSON.
func ParseResponseError(statusCode int, data []byte) (*ResponseError, error) {
	var errResp ResponseError

	err := json.Unmarshal(data, &errResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	errResp.StatusCode = statusCode

	return &errResp, nil
}
