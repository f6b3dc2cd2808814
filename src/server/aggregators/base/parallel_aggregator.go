package base

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gink/src/internal/common"
	"gink/src/internal/errors"
)

// maxStreamBuffer bounds the completion channel when no concurrency limit is set
const maxStreamBuffer = 1024

// WorkFunc computes the result of the work unit at index
type WorkFunc[R any] func(ctx context.Context, index int) (R, error)

// FoldFunc combines one unit result into the accumulator
type FoldFunc[R, A any] func(acc A, value R) A

// FailurePolicy decides what a unit fault does to the rest of the batch
type FailurePolicy int

const (
	// FailFast cancels the batch on the first fault and discards the partial value
	FailFast FailurePolicy = iota
	// BestEffort keeps folding, records every fault and returns the partial value
	BestEffort
)

var failurePolicyNames = map[FailurePolicy]string{
	FailFast:   "fail-fast",
	BestEffort: "best-effort",
}

func (p FailurePolicy) String() string {
	if name, ok := failurePolicyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParseFailurePolicy maps a configured policy name to a FailurePolicy
func ParseFailurePolicy(name string) (FailurePolicy, error) {
	for policy, policyName := range failurePolicyNames {
		if strings.EqualFold(name, policyName) {
			return policy, nil
		}
	}
	return FailFast, errors.NewValidationError("policy", fmt.Sprintf("unknown failure policy %q", name))
}

// Options configures a ParallelAggregator
type Options struct {
	// Concurrency caps the number of units in flight; 0 or less means no cap
	Concurrency int
	Policy      FailurePolicy
	Logger      *common.SafeLogger
	Metrics     *Metrics
}

// Completion is one entry of the unordered completion stream
type Completion[R any] struct {
	Index int
	Value R
	Err   error
}

// Outcome describes a finished batch
type Outcome[A any] struct {
	BatchID   string
	Value     A
	Launched  int
	Completed int
	// Failed counts units that returned an error of their own
	Failed int
	// Cancelled counts units stopped because the batch was cancelled
	Cancelled int
	Elapsed   time.Duration
	// Failures is only populated under BestEffort
	Failures []UnitError
	// FailedIndexes lists the failed unit indexes in ascending order
	FailedIndexes []int
}

// ParallelAggregator launches a batch of independent work units and folds
// their results, in completion order, into a single accumulator.
type ParallelAggregator[R, A any] struct {
	concurrency int
	policy      FailurePolicy
	logger      *common.SafeLogger
	metrics     *Metrics
	init        A
	fold        FoldFunc[R, A]
}

// NewParallelAggregator creates an aggregator whose accumulator starts at init
func NewParallelAggregator[R, A any](opts Options, init A, fold FoldFunc[R, A]) *ParallelAggregator[R, A] {
	logger := opts.Logger
	if logger == nil {
		logger = common.NopLogger()
	}
	return &ParallelAggregator[R, A]{
		concurrency: opts.Concurrency,
		policy:      opts.Policy,
		logger:      logger,
		metrics:     opts.Metrics,
		init:        init,
		fold:        fold,
	}
}

// completionStream is fed by the launcher. launched is final once ch is closed.
type completionStream[R any] struct {
	ch       chan Completion[R]
	launched int
}

// Execute runs units work units and returns the folded result. It returns only
// after every launched unit has reported back.
func (a *ParallelAggregator[R, A]) Execute(ctx context.Context, units int, work WorkFunc[R]) (Outcome[A], error) {
	outcome := Outcome[A]{
		BatchID: uuid.NewString(),
		Value:   a.init,
	}

	if units < 0 {
		return outcome, errors.NewValidationError("units", fmt.Sprintf("must not be negative, got %d", units))
	}
	if work == nil {
		return outcome, errors.NewValidationError("work", "no work function provided")
	}

	logger := a.logger.With("batch", outcome.BatchID)
	if units == 0 {
		logger.Debug("Empty batch, nothing to launch")
		return outcome, nil
	}

	start := time.Now()
	defer func() {
		a.metrics.observeBatch(time.Since(start))
	}()

	logger.Info("Launching %d work units (concurrency limit: %s, policy: %s)",
		units, a.describeLimit(), a.policy)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := a.launch(runCtx, units, work)

	acc := a.init
	collector := NewErrorCollector()
	var fault error

	for completion := range stream.ch {
		if completion.Err == nil {
			acc = a.fold(acc, completion.Value)
			outcome.Completed++
			continue
		}

		if stoppedByBatch(runCtx, completion.Err) {
			outcome.Cancelled++
			continue
		}

		outcome.Failed++
		collector.Add(completion.Index, completion.Err)
		if a.policy == FailFast && fault == nil && ctx.Err() == nil {
			fault = errors.NewUnitFaultError(outcome.BatchID, completion.Index, completion.Err)
			logger.Error("Work unit %d failed, cancelling batch: %v", completion.Index, completion.Err)
			cancel()
		}
	}

	outcome.Launched = stream.launched
	outcome.Elapsed = time.Since(start)
	outcome.FailedIndexes = collector.GetFailedIndexes()
	logPanics(logger, collector)

	if err := ctx.Err(); err != nil {
		logger.Warn("Batch cancelled after %d of %d units completed", outcome.Completed, units)
		outcome.Value = a.init
		return outcome, fmt.Errorf("batch %s cancelled: %w", outcome.BatchID, err)
	}

	if fault != nil {
		outcome.Value = a.init
		return outcome, fault
	}

	outcome.Value = acc
	if collector.HasErrors() {
		outcome.Failures = collector.Errors()
		logger.Warn("Batch finished with %d failed units %v: %s",
			collector.GetErrorCount(), outcome.FailedIndexes, collector.GetErrorSummary())
		return outcome, collector.Err(outcome.BatchID)
	}

	logger.Info("Batch completed: %d units in %v", outcome.Completed, outcome.Elapsed)
	return outcome, nil
}

// launch starts the units from a single goroutine, blocking whenever the
// concurrency limit is reached, and closes the stream once all of them reported.
func (a *ParallelAggregator[R, A]) launch(ctx context.Context, units int, work WorkFunc[R]) *completionStream[R] {
	stream := &completionStream[R]{
		ch: make(chan Completion[R], a.streamBuffer(units)),
	}

	var g errgroup.Group
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}

	go func() {
		defer close(stream.ch)

		for i := 0; i < units; i++ {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				a.metrics.unitStarted()
				value, err := runUnit(ctx, i, work)
				a.metrics.unitFinished(err, stoppedByBatch(ctx, err))
				stream.ch <- Completion[R]{Index: i, Value: value, Err: err}
				return nil
			})
			stream.launched++
		}

		_ = g.Wait()
	}()

	return stream
}

// runUnit executes one unit, turning a panic into a PanicError
func runUnit[R any](ctx context.Context, index int, work WorkFunc[R]) (value R, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero R
			value = zero
			err = errors.NewPanicError(r, debug.Stack())
		}
	}()
	return work(ctx, index)
}

// stoppedByBatch reports whether err is the unit giving up because ctx, the
// batch context, was cancelled. Such units did not fail on their own.
func stoppedByBatch(ctx context.Context, err error) bool {
	return err != nil && ctx.Err() != nil && errors.IsCancellationError(err)
}

// logPanics writes the stack of every recovered panic at debug level
func logPanics(logger *common.SafeLogger, collector *ErrorCollector) {
	for _, unitErr := range collector.GetErrorsByType(ErrorTypePanic) {
		if panicErr, ok := errors.AsPanic(unitErr.Error); ok {
			logger.Debug("Work unit %d panicked: %v\n%s", unitErr.Index, panicErr.Value, panicErr.Stack)
		}
	}
}

func (a *ParallelAggregator[R, A]) streamBuffer(units int) int {
	size := maxStreamBuffer
	if a.concurrency > 0 {
		size = a.concurrency
	}
	if units < size {
		size = units
	}
	return size
}

func (a *ParallelAggregator[R, A]) describeLimit() string {
	if a.concurrency <= 0 {
		return "none"
	}
	return fmt.Sprintf("%d", a.concurrency)
}
