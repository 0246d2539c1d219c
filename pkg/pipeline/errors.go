package pipeline

import "errors"

// Error classes for categorization at the adapter boundary.
//
// Fatal classes (nothing executes, or the call aborts): ErrEmptySource,
// ErrOversizedInput, ErrInvalidLayer (re-exported from the layer
// package), ErrTimeout. Per-layer failures are non-fatal and land in
// Result.LayerErrors instead.
var (
	// ErrEmptySource indicates zero or whitespace-only input. Callers
	// must not silently pass an empty file.
	ErrEmptySource = errors.New("empty source")

	// ErrOversizedInput indicates input above the configured ceiling,
	// rejected before any layer runs to bound worst-case latency.
	ErrOversizedInput = errors.New("input exceeds configured size limit")

	// ErrTimeout indicates the caller's deadline expired. The pipeline
	// aborts between layer boundaries, never mid-layer.
	ErrTimeout = errors.New("analysis timed out")

	// ErrUnsupportedLanguage marks a file no layer recognizes. It is a
	// benign class: the pipeline reports zero issues, and callers decide
	// whether to warn.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// IsFatal reports whether an error aborts the whole call.
func IsFatal(err error) bool {
	return errors.Is(err, ErrEmptySource) ||
		errors.Is(err, ErrOversizedInput) ||
		errors.Is(err, ErrTimeout)
}
