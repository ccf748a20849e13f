package model

import "fmt"

// BuildError represents a failure while assembling a document, with
// the pipeline stage and field that produced it.
type BuildError struct {
	Stage   string
	Field   string
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s (%v)", e.Stage, e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Stage, e.Field, e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}

// NewBuildError creates a new build error
func NewBuildError(stage, field, message string, cause error) *BuildError {
	return &BuildError{
		Stage:   stage,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

// SignError represents a failure in the signing step. The pipeline
// propagates it unchanged; no retry and no partial document.
type SignError struct {
	Message string
	Cause   error
}

func (e *SignError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("signing failed: %s (%v)", e.Message, e.Cause)
	}
	return fmt.Sprintf("signing failed: %s", e.Message)
}

func (e *SignError) Unwrap() error {
	return e.Cause
}

// NewSignError creates a new signing error
func NewSignError(message string, cause error) *SignError {
	return &SignError{
		Message: message,
		Cause:   cause,
	}
}
