package domain

import (
	"fmt"
	"net/http"
)

// ConversionErrorKind classifies conversion failures. Every kind maps to
// an HTTP status class: detection and validation failures are client
// errors, extraction/render/staging failures are server errors. All are
// terminal for the request; none are retried.
type ConversionErrorKind string

const (
	ErrKindFormatUnrecognized ConversionErrorKind = "format_unrecognized"
	ErrKindTargetUnsupported  ConversionErrorKind = "target_format_unsupported"
	ErrKindIdenticalFormats   ConversionErrorKind = "identical_formats"
	ErrKindPathNotImplemented ConversionErrorKind = "conversion_path_not_implemented"
	ErrKindExtractionFailed   ConversionErrorKind = "extraction_failed"
	ErrKindRenderFailed       ConversionErrorKind = "render_failed"
	ErrKindStagingFailed      ConversionErrorKind = "staging_failed"
)

// ConversionError is a structured conversion failure carrying its kind,
// the formats involved where applicable, and an underlying cause.
type ConversionError struct {
	Kind    ConversionErrorKind
	Source  Format
	Target  Format
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// StatusCode maps the error kind to an HTTP status class.
func (e *ConversionError) StatusCode() int {
	switch e.Kind {
	case ErrKindFormatUnrecognized, ErrKindTargetUnsupported,
		ErrKindIdenticalFormats, ErrKindPathNotImplemented:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewFormatUnrecognizedError reports an unknown or missing source extension.
func NewFormatUnrecognizedError(filename string) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindFormatUnrecognized,
		Message: fmt.Sprintf("unsupported source file format: %q", filename),
	}
}

// NewTargetUnsupportedError reports an unknown target format identifier.
func NewTargetUnsupportedError(name string) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindTargetUnsupported,
		Message: fmt.Sprintf("unsupported target format: %q", name),
	}
}

// NewIdenticalFormatsError reports a no-op conversion request.
func NewIdenticalFormatsError(format Format) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindIdenticalFormats,
		Source:  format,
		Target:  format,
		Message: "source and target formats are the same",
	}
}

// NewPathNotImplementedError reports a valid pair with no table entry.
func NewPathNotImplementedError(source, target Format) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindPathNotImplemented,
		Source:  source,
		Target:  target,
		Message: fmt.Sprintf("conversion from %s to %s not implemented", source, target),
	}
}

// NewExtractionError reports unreadable or corrupt source content.
func NewExtractionError(source Format, cause error) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindExtractionFailed,
		Source:  source,
		Message: fmt.Sprintf("failed to extract %s content", source),
		Cause:   cause,
	}
}

// NewRenderError reports a failure producing target bytes.
func NewRenderError(target Format, cause error) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindRenderFailed,
		Target:  target,
		Message: fmt.Sprintf("failed to render %s output", target),
		Cause:   cause,
	}
}

// NewStagingError reports a failure persisting temporary bytes.
func NewStagingError(cause error) *ConversionError {
	return &ConversionError{
		Kind:    ErrKindStagingFailed,
		Message: "failed to stage uploaded file",
		Cause:   cause,
	}
}

// ValidationError represents a validation error with field and message information.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}
