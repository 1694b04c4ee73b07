package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Element errors — raised inside a filter when an element reaching it has
// an unexpected shape or value.
const (
	// ErrCodeMalformedElement indicates an element could not be parsed or
	// converted by a transform filter.
	ErrCodeMalformedElement ErrorCode = "MALFORMED_ELEMENT"
)

// Configuration errors — raised at filter or pipeline construction time.
const (
	// ErrCodeFilterConfig indicates a filter was given an invalid parameter.
	ErrCodeFilterConfig ErrorCode = "INVALID_FILTER_CONFIG"
	// ErrCodeInvalidInput indicates an input value failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Dataset errors — raised by the loaders and generators feeding a pipeline.
const (
	// ErrCodeDatasetIO indicates a dataset file could not be read or written.
	ErrCodeDatasetIO ErrorCode = "DATASET_IO"
	// ErrCodeDatasetFormat indicates a dataset file could not be decoded.
	ErrCodeDatasetFormat ErrorCode = "DATASET_FORMAT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
