// Package aggregators provides the concrete batch computations run by the server.
package aggregators

import (
	"context"
	"time"

	"gink/src/server/aggregators/base"
)

// DelayedSumAggregator sums the indexes of a batch of delayed work units
type DelayedSumAggregator struct {
	aggregator *base.ParallelAggregator[uint64, uint64]
}

// NewDelayedSumAggregator creates a sum aggregator with the given launch options
func NewDelayedSumAggregator(opts base.Options) *DelayedSumAggregator {
	return &DelayedSumAggregator{
		aggregator: base.NewParallelAggregator[uint64, uint64](opts, 0, SumFold),
	}
}

// Run launches units work units that each wait for delay and yield their index.
// On success the value is units*(units-1)/2.
func (d *DelayedSumAggregator) Run(ctx context.Context, units int, delay time.Duration) (base.Outcome[uint64], error) {
	return d.aggregator.Execute(ctx, units, DelayedIndexUnit(delay))
}

// DelayedIndexUnit returns a work unit that suspends for delay without holding
// an OS thread, then yields its own index. It returns early with the context
// error if cancelled.
func DelayedIndexUnit(delay time.Duration) base.WorkFunc[uint64] {
	return func(ctx context.Context, index int) (uint64, error) {
		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()

			select {
			case <-timer.C:
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
		return uint64(index), nil
	}
}

// SumFold adds one unit result to the running total
func SumFold(acc uint64, value uint64) uint64 {
	return acc + value
}
