package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnitFaultError(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := NewUnitFaultError("batch-1", 42, cause)

	if err.Index != 42 {
		t.Errorf("Expected index 42, got %d", err.Index)
	}

	expectedError := "work unit 42 of batch batch-1 failed: disk on fire"
	if err.Error() != expectedError {
		t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
	}

	if !stderrors.Is(err, cause) {
		t.Errorf("Expected cause to be reachable through Unwrap")
	}
}

func TestUnitFaultError_NoBatch(t *testing.T) {
	err := NewUnitFaultError("", 7, fmt.Errorf("boom"))

	if err.Error() != "work unit 7 failed: boom" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}
}

func TestPanicError(t *testing.T) {
	err := NewPanicError("index out of range", []byte("goroutine 1"))

	if err.Error() != "panic: index out of range" {
		t.Errorf("Unexpected error string: %s", err.Error())
	}

	if string(err.Stack) != "goroutine 1" {
		t.Errorf("Expected stack to be preserved")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("units", "must not be negative")

	expectedError := "validation error for parameter 'units': must not be negative"
	if err.Error() != expectedError {
		t.Errorf("Expected error string %s, got %s", expectedError, err.Error())
	}
}

func TestErrorClassification(t *testing.T) {
	fault := NewUnitFaultError("b", 3, NewPanicError("x", nil))
	wrappedFault := fmt.Errorf("aggregate: %w", fault)

	tests := []struct {
		name     string
		err      error
		checker  func(error) bool
		expected bool
	}{
		{"unit fault", fault, IsUnitFault, true},
		{"wrapped unit fault", wrappedFault, IsUnitFault, true},
		{"plain error is not a unit fault", fmt.Errorf("work unit failed"), IsUnitFault, false},
		{"panic inside fault", wrappedFault, IsPanic, true},
		{"validation", NewValidationError("p", "m"), IsValidationError, true},
		{"wrapped validation", WrapWithContext("load", NewValidationError("p", "m")), IsValidationError, true},
		{"context canceled", context.Canceled, IsCancellationError, true},
		{"deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded), IsCancellationError, true},
		{"cancelled text without context error", fmt.Errorf("operation cancelled"), IsCancellationError, false},
		{"unrelated", fmt.Errorf("boom"), IsCancellationError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker(tt.err); got != tt.expected {
				t.Errorf("Expected %v for %v, got %v", tt.expected, tt.err, got)
			}
		})
	}
}

func TestUnitFault(t *testing.T) {
	fault := NewUnitFaultError("b", 9, fmt.Errorf("bad"))

	got, ok := UnitFault(fmt.Errorf("outer: %w", fault))
	if !ok || got.Index != 9 {
		t.Errorf("Expected to find fault for index 9, got %v %v", got, ok)
	}

	if _, ok := UnitFault(fmt.Errorf("plain")); ok {
		t.Errorf("Expected no fault in plain error")
	}
}

func TestAsPanic(t *testing.T) {
	panicErr := NewPanicError("boom", []byte("stack"))

	got, ok := AsPanic(NewUnitFaultError("b", 1, panicErr))
	if !ok || got.Value != "boom" || string(got.Stack) != "stack" {
		t.Errorf("Expected to find panic inside fault, got %v %v", got, ok)
	}

	if _, ok := AsPanic(fmt.Errorf("plain")); ok {
		t.Errorf("Expected no panic in plain error")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := WrapWithContext("test operation", original)

	if !strings.Contains(wrapped.Error(), "test operation") {
		t.Errorf("Expected wrapped error to contain operation context")
	}

	if !stderrors.Is(wrapped, original) {
		t.Errorf("Expected wrapped error to unwrap to original")
	}

	validation := WrapValidationError("delay", fmt.Errorf("negative"))
	if !IsValidationError(validation) {
		t.Errorf("Expected WrapValidationError to produce a validation error")
	}
}

func TestNilErrorHandling(t *testing.T) {
	if WrapWithContext("op", nil) != nil {
		t.Errorf("Expected nil for nil error")
	}
	if WrapValidationError("p", nil) != nil {
		t.Errorf("Expected nil for nil error")
	}
	if IsUnitFault(nil) || IsPanic(nil) || IsValidationError(nil) || IsCancellationError(nil) {
		t.Errorf("Expected classifiers to reject nil")
	}
}
