package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// UnitFaultError reports a work unit that failed to produce a result
type UnitFaultError struct {
	BatchID string `json:"batch_id,omitempty"`
	Index   int    `json:"index"`
	Cause   error  `json:"cause,omitempty"`
}

func (e *UnitFaultError) Error() string {
	if e.BatchID != "" {
		return fmt.Sprintf("work unit %d of batch %s failed: %v", e.Index, e.BatchID, e.Cause)
	}
	return fmt.Sprintf("work unit %d failed: %v", e.Index, e.Cause)
}

func (e *UnitFaultError) Unwrap() error {
	return e.Cause
}

// PanicError carries a value recovered from a panicking work unit
type PanicError struct {
	Value interface{} `json:"value"`
	Stack []byte      `json:"-"`
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// ValidationError represents parameter validation errors
type ValidationError struct {
	Parameter string `json:"parameter"`
	Message   string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for parameter '%s': %s", e.Parameter, e.Message)
}

// Error constructors

// NewUnitFaultError creates a fault for the unit at index
func NewUnitFaultError(batchID string, index int, cause error) *UnitFaultError {
	return &UnitFaultError{
		BatchID: batchID,
		Index:   index,
		Cause:   cause,
	}
}

// NewPanicError wraps a recovered panic value and the stack captured at recovery
func NewPanicError(value interface{}, stack []byte) *PanicError {
	return &PanicError{
		Value: value,
		Stack: stack,
	}
}

// NewValidationError creates a new validation error for the specified parameter
func NewValidationError(parameter, message string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Message:   message,
	}
}

// Error classification functions

// IsUnitFault reports whether err is, or wraps, a work unit fault
func IsUnitFault(err error) bool {
	var fault *UnitFaultError
	return stderrors.As(err, &fault)
}

// UnitFault returns the first unit fault in err's chain
func UnitFault(err error) (*UnitFaultError, bool) {
	var fault *UnitFaultError
	if stderrors.As(err, &fault) {
		return fault, true
	}
	return nil, false
}

// IsPanic reports whether err is, or wraps, a recovered panic
func IsPanic(err error) bool {
	var panicErr *PanicError
	return stderrors.As(err, &panicErr)
}

// AsPanic returns the recovered panic in err's chain
func AsPanic(err error) (*PanicError, bool) {
	var panicErr *PanicError
	if stderrors.As(err, &panicErr) {
		return panicErr, true
	}
	return nil, false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return stderrors.As(err, &validationErr)
}

// IsCancellationError reports whether err wraps a context cancellation or deadline
func IsCancellationError(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)
}

// Error wrapping utilities

// WrapWithContext wraps an error with operation context
func WrapWithContext(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// WrapValidationError wraps an error as a validation error
func WrapValidationError(parameter string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{
		Parameter: parameter,
		Message:   err.Error(),
	}
}
