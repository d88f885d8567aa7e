// Package apperr defines the pipeline-wide error taxonomy. Every stage
// failure carries a Kind so callers can branch on the failure class
// without matching message text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	PrerequisiteMissing   Kind = "prerequisite_missing"
	UnsupportedSource     Kind = "unsupported_source"
	SourceNotFound        Kind = "source_not_found"
	AcquisitionFailed     Kind = "acquisition_failed"
	AcquisitionIncomplete Kind = "acquisition_incomplete"
	TranscodeFailed       Kind = "transcode_failed"
	TranscriptionFailed   Kind = "transcription_failed"
	EmptyTranscript       Kind = "empty_transcript"
	SummarizationFailed   Kind = "summarization_failed"
	ConfigurationInvalid  Kind = "configuration_invalid"
)

// Error is a kind-tagged failure with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a kind-tagged error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a kind-tagged error that wraps an underlying cause.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of err, or "" when err carries no taxonomy tag.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is tagged with the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
