package base

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"gink/src/internal/errors"
)

func TestErrorCollector_Empty(t *testing.T) {
	ec := NewErrorCollector()

	assert.False(t, ec.HasErrors())
	assert.Nil(t, ec.Errors())
	assert.Nil(t, ec.GetFailedIndexes())
	assert.Equal(t, "No errors", ec.GetErrorSummary())
	assert.NoError(t, ec.Err("batch"))
}

func TestErrorCollector_AddIgnoresNil(t *testing.T) {
	ec := NewErrorCollector()
	ec.Add(1, nil)

	assert.False(t, ec.HasErrors())
}

func TestErrorCollector_DetectsTypes(t *testing.T) {
	ec := NewErrorCollector()
	ec.Add(4, errors.NewPanicError("boom", nil))
	ec.Add(2, fmt.Errorf("waiting: %w", context.Canceled))
	ec.Add(9, fmt.Errorf("disk full"))
	ec.Add(6, fmt.Errorf("upload cancelled by peer"))

	require.Equal(t, 4, ec.GetErrorCount())
	assert.Len(t, ec.GetErrorsByType(ErrorTypePanic), 1)
	assert.Len(t, ec.GetErrorsByType(ErrorTypeCancelled), 1)
	assert.Len(t, ec.GetErrorsByType(ErrorTypeGeneral), 2, "the word cancelled alone does not make a cancellation")
	assert.Equal(t, []int{2, 4, 6, 9}, ec.GetFailedIndexes())

	summary := ec.GetErrorSummary()
	assert.Contains(t, summary, "panic (1): unit 4: panic: boom")
	assert.Contains(t, summary, "general (2): unit 9: disk full; unit 6: upload cancelled by peer")
	assert.Less(t, strings.Index(summary, "cancelled (1)"), strings.Index(summary, "general"), "summary is ordered by type")
}

func TestErrorCollector_Err(t *testing.T) {
	ec := NewErrorCollector()
	ec.Add(1, fmt.Errorf("first"))
	ec.Add(3, fmt.Errorf("second"))

	err := ec.Err("batch-7")
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	fault, ok := errors.UnitFault(errs[1])
	require.True(t, ok)
	assert.Equal(t, 3, fault.Index)
	assert.Equal(t, "batch-7", fault.BatchID)
}

func TestErrorCollector_ErrorsIsACopy(t *testing.T) {
	ec := NewErrorCollector()
	ec.Add(1, fmt.Errorf("first"))

	snapshot := ec.Errors()
	snapshot[0].Index = 100

	assert.Equal(t, 1, ec.Errors()[0].Index)
	assert.Equal(t, []int{1}, ec.GetFailedIndexes())
}
