package errors

import (
	"errors"
	"fmt"
)

// PipelineError carries an error code alongside the underlying cause so a
// stage boundary can surface both to the operator.
type PipelineError struct {
	Code    ErrorCode
	Message string
	Err     error
}

// ErrorOption is a functional option for configuring pipeline errors
type ErrorOption func(*PipelineError)

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(pe *PipelineError) {
		pe.Message = message
	}
}

// New creates a PipelineError for the given code
func New(code ErrorCode, opts ...ErrorOption) *PipelineError {
	pe := &PipelineError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(pe)
	}
	return pe
}

// Wrap creates a PipelineError wrapping an underlying cause
func Wrap(code ErrorCode, err error, opts ...ErrorOption) *PipelineError {
	pe := New(code, opts...)
	pe.Err = err
	return pe
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the error code from an error chain, or
// SystemUnexpectedError when no PipelineError is present.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return SystemUnexpectedError
}

// HasCode reports whether the error chain carries the given code.
func HasCode(err error, code ErrorCode) bool {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
