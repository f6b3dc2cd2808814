package base

import (
	stderrors "errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks work unit throughput. A nil *Metrics records nothing.
type Metrics struct {
	unitsLaunched  prometheus.Counter
	unitsCompleted prometheus.Counter
	unitsFailed    prometheus.Counter
	unitsCancelled prometheus.Counter
	unitsInFlight  prometheus.Gauge
	batchDuration  prometheus.Histogram
}

// NewMetrics creates the aggregator collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		unitsLaunched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "units_launched_total",
			Help:      "Total work units started.",
		}),
		unitsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "units_completed_total",
			Help:      "Total work units that produced a result.",
		}),
		unitsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "units_failed_total",
			Help:      "Total work units that returned an error or panicked.",
		}),
		unitsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "units_cancelled_total",
			Help:      "Total work units stopped early because their batch was cancelled.",
		}),
		unitsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "units_in_flight",
			Help:      "Work units currently running.",
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gink",
			Subsystem: "aggregator",
			Name:      "batch_duration_seconds",
			Help:      "Wall-clock time from batch launch to final fold.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
	}

	if reg != nil {
		m.unitsLaunched = register(reg, m.unitsLaunched)
		m.unitsCompleted = register(reg, m.unitsCompleted)
		m.unitsFailed = register(reg, m.unitsFailed)
		m.unitsCancelled = register(reg, m.unitsCancelled)
		m.unitsInFlight = register(reg, m.unitsInFlight)
		m.batchDuration = register(reg, m.batchDuration)
	}

	return m
}

// register adds c to reg, reusing the collector already registered under the
// same name so successive batches on one registry share their series.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if stderrors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

func (m *Metrics) unitStarted() {
	if m == nil {
		return
	}
	m.unitsLaunched.Inc()
	m.unitsInFlight.Inc()
}

// unitFinished records how a unit ended. Units that only stopped because the
// batch was cancelled are counted apart from failures.
func (m *Metrics) unitFinished(err error, cancelled bool) {
	if m == nil {
		return
	}
	m.unitsInFlight.Dec()
	switch {
	case cancelled:
		m.unitsCancelled.Inc()
	case err != nil:
		m.unitsFailed.Inc()
	default:
		m.unitsCompleted.Inc()
	}
}

func (m *Metrics) observeBatch(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.batchDuration.Observe(elapsed.Seconds())
}
