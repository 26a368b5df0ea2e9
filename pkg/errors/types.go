package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/killallgit/fanboy/pkg/fanboy"
	"github.com/killallgit/fanboy/pkg/jsonhttp"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Validation errors
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Upstream errors
	ErrCodeUpstream         ErrorCode = "UPSTREAM_ERROR"
	ErrCodeUpstreamTimeout  ErrorCode = "UPSTREAM_TIMEOUT"
	ErrCodeUnexpectedResult ErrorCode = "UNEXPECTED_RESULT"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrCodeCancelled        ErrorCode = "CANCELLED"

	// Internal errors
	ErrCodeInternal    ErrorCode = "INTERNAL"
	ErrCodeServiceDown ErrorCode = "SERVICE_DOWN"
)

// StatusClientClosedRequest is the non-standard status used when the caller
// went away before the upstream answered.
const StatusClientClosedRequest = 499

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode      `json:"code"`
	Message  string         `json:"message"`
	Details  map[string]any `json:"details,omitempty"`
	Cause    error          `json:"-"`
	HTTPCode int            `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Newf creates a new AppError with formatted message
func Newf(code ErrorCode, format string, args ...any) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return New(code, message).WithCause(cause)
}

// getDefaultHTTPCode returns the default HTTP status code for an error code
func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput, ErrCodeMissingField:
		return http.StatusBadRequest
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeCancelled:
		return StatusClientClosedRequest
	case ErrCodeUpstreamTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeUpstream, ErrCodeUnexpectedResult:
		return http.StatusBadGateway
	case ErrCodeServiceDown:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// ValidationError creates a validation error
func ValidationError(field string, reason string) *AppError {
	return New(ErrCodeInvalidInput, fmt.Sprintf("validation failed for field '%s': %s", field, reason)).
		WithDetail("field", field).
		WithDetail("reason", reason)
}

// MissingFieldError creates a missing field error
func MissingFieldError(field string) *AppError {
	return New(ErrCodeMissingField, fmt.Sprintf("required field '%s' is missing", field)).
		WithDetail("field", field)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// ServiceDown creates an error for a dependency that is not configured
func ServiceDown(service string) *AppError {
	return New(ErrCodeServiceDown, fmt.Sprintf("%s not available", service)).
		WithDetail("service", service)
}

// FromUpstream classifies an error delivered by the fanboy client
func FromUpstream(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stderrors.Is(err, fanboy.ErrInvalidTerm):
		return Wrap(err, ErrCodeInvalidInput, "search term must not be blank")

	case stderrors.Is(err, fanboy.ErrUnexpectedResult):
		return Wrap(err, ErrCodeUnexpectedResult, "unexpected response from fanboy service").
			WithDetail("error", err.Error())

	case stderrors.Is(err, fanboy.ErrCancelledByUser):
		return Wrap(err, ErrCodeCancelled, "request was cancelled")

	case stderrors.Is(err, context.DeadlineExceeded) || jsonhttp.CodeOf(err) == jsonhttp.CodeTimedOut:
		return Wrap(err, ErrCodeUpstreamTimeout, "fanboy service timed out")

	case stderrors.Is(err, jsonhttp.ErrRateLimited):
		return Wrap(err, ErrCodeRateLimited, "fanboy service is rate limiting requests")
	}

	return Wrap(err, ErrCodeUpstream, "fanboy service request failed").
		WithDetail("code", jsonhttp.CodeOf(err)).
		WithDetail("error", err.Error())
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
