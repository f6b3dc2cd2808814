package base

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/multierr"

	internalErrors "gink/src/internal/errors"
)

// ErrorType represents different categories of unit faults
type ErrorType string

const (
	ErrorTypePanic     ErrorType = "panic"
	ErrorTypeCancelled ErrorType = "cancelled"
	ErrorTypeGeneral   ErrorType = "general"
)

// UnitError records the fault of a single work unit
type UnitError struct {
	Index     int
	Error     error
	ErrorType ErrorType
	Timestamp time.Time
}

// ErrorCollector gathers the unit faults of one batch. It belongs to the fold
// goroutine and is not safe for concurrent use.
type ErrorCollector struct {
	errors []UnitError
}

// NewErrorCollector creates a new ErrorCollector instance
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// Add records the fault of the unit at index, classifying it by its cause
func (ec *ErrorCollector) Add(index int, err error) {
	if err == nil {
		return
	}

	ec.errors = append(ec.errors, UnitError{
		Index:     index,
		Error:     err,
		ErrorType: detectErrorType(err),
		Timestamp: time.Now(),
	})
}

// Errors returns a copy of the collected faults in the order they were added
func (ec *ErrorCollector) Errors() []UnitError {
	if len(ec.errors) == 0 {
		return nil
	}
	out := make([]UnitError, len(ec.errors))
	copy(out, ec.errors)
	return out
}

// GetErrorsByType returns errors filtered by type
func (ec *ErrorCollector) GetErrorsByType(errorType ErrorType) []UnitError {
	var filtered []UnitError
	for _, unitErr := range ec.errors {
		if unitErr.ErrorType == errorType {
			filtered = append(filtered, unitErr)
		}
	}

	return filtered
}

// HasErrors returns true if any errors have been collected
func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.errors) > 0
}

// GetErrorCount returns the total number of errors collected
func (ec *ErrorCollector) GetErrorCount() int {
	return len(ec.errors)
}

// GetFailedIndexes returns the sorted indexes of units that failed, nil if none did
func (ec *ErrorCollector) GetFailedIndexes() []int {
	if len(ec.errors) == 0 {
		return nil
	}

	indexes := make([]int, 0, len(ec.errors))
	for _, unitErr := range ec.errors {
		indexes = append(indexes, unitErr.Index)
	}
	sort.Ints(indexes)

	return indexes
}

// GetErrorSummary returns a formatted summary of all errors by type
func (ec *ErrorCollector) GetErrorSummary() string {
	if len(ec.errors) == 0 {
		return "No errors"
	}

	errorsByType := make(map[ErrorType][]string)
	for _, unitErr := range ec.errors {
		errorsByType[unitErr.ErrorType] = append(
			errorsByType[unitErr.ErrorType],
			fmt.Sprintf("unit %d: %v", unitErr.Index, unitErr.Error),
		)
	}

	types := make([]string, 0, len(errorsByType))
	for errorType := range errorsByType {
		types = append(types, string(errorType))
	}
	sort.Strings(types)

	summaryParts := make([]string, 0, len(types))
	for _, errorType := range types {
		errorList := errorsByType[ErrorType(errorType)]
		summaryParts = append(summaryParts, fmt.Sprintf("%s (%d): %s",
			errorType, len(errorList), strings.Join(errorList, "; ")))
	}

	return strings.Join(summaryParts, " | ")
}

// Err combines the collected faults into one error, nil when there are none
func (ec *ErrorCollector) Err(batchID string) error {
	var combined error
	for _, unitErr := range ec.errors {
		combined = multierr.Append(combined, internalErrors.NewUnitFaultError(batchID, unitErr.Index, unitErr.Error))
	}
	return combined
}

// detectErrorType determines error type using the classifiers in internal/errors
func detectErrorType(err error) ErrorType {
	if internalErrors.IsPanic(err) {
		return ErrorTypePanic
	}

	if internalErrors.IsCancellationError(err) {
		return ErrorTypeCancelled
	}

	return ErrorTypeGeneral
}
