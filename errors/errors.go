package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// CodeOf extracts the ErrorCode from err, or ErrCodeInternal when err is
// not an AppError.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// --- Common Error Constructors ---

// MalformedElement creates a new AppError for an element a filter could not
// process. The offending value is recorded in the details.
func MalformedElement(value any, reason string) *AppError {
	return &AppError{
		Code: ErrCodeMalformedElement, Message: fmt.Sprintf("Malformed element: %s", reason),
		Details: map[string]any{"element": fmt.Sprintf("%v", value)},
	}
}

// FilterConfig creates a new AppError for a filter given an invalid
// construction parameter.
func FilterConfig(filter, reason string) *AppError {
	return &AppError{
		Code: ErrCodeFilterConfig, Message: fmt.Sprintf("Invalid configuration for %s filter: %s", filter, reason),
		Details: map[string]any{"filter": filter},
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// DatasetIO creates a new AppError for a dataset file that could not be
// read or written.
func DatasetIO(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatasetIO, Message: fmt.Sprintf("Unable to access dataset %s", path),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// DatasetFormat creates a new AppError for a dataset file that could not be
// decoded.
func DatasetFormat(path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDatasetFormat, Message: fmt.Sprintf("Unable to decode dataset %s", path),
		Details: map[string]any{"path": path}, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}
