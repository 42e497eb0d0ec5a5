package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricComputationsTotal   = "staz.computations.total"
	metricComputationErrors   = "staz.computation.errors.total"
	metricComputationDuration = "staz.computation.duration.seconds"
	metricSampleSize          = "staz.sample.size"

	attrStatistic = "statistic"
	attrStatus    = "status"
	attrCode      = "code"

	// StatusOK and StatusError label the outcome of a computation.
	StatusOK    = "ok"
	StatusError = "error"
)

// durationBucketBoundaries covers 1µs to 10s: O(n) scans on small samples up
// to quadratic mode searches on large ones.
var durationBucketBoundaries = []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1, 10}

// sizeBucketBoundaries groups sample lengths by order of magnitude.
var sizeBucketBoundaries = []float64{1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7}

// ComputeMetrics holds the instruments recorded around every statistic.
type ComputeMetrics struct {
	computations metric.Int64Counter
	errors       metric.Int64Counter
	duration     metric.Float64Histogram
	sampleSize   metric.Int64Histogram
}

// NewComputeMetrics creates the computation instruments from mt.
func NewComputeMetrics(mt metric.Meter) (*ComputeMetrics, error) {
	computations, err := mt.Int64Counter(metricComputationsTotal,
		metric.WithDescription("Total number of statistics computed"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricComputationsTotal, err)
	}

	errs, err := mt.Int64Counter(metricComputationErrors,
		metric.WithDescription("Statistics that failed, by error code"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricComputationErrors, err)
	}

	duration, err := mt.Float64Histogram(metricComputationDuration,
		metric.WithDescription("Time spent computing a statistic"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricComputationDuration, err)
	}

	size, err := mt.Int64Histogram(metricSampleSize,
		metric.WithDescription("Number of values per analysed sample"),
		metric.WithUnit("{value}"),
		metric.WithExplicitBucketBoundaries(sizeBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricSampleSize, err)
	}

	return &ComputeMetrics{
		computations: computations,
		errors:       errs,
		duration:     duration,
		sampleSize:   size,
	}, nil
}

// RecordComputation records one statistic. code is the failure code name and
// is ignored when it equals "ok".
func (cm *ComputeMetrics) RecordComputation(ctx context.Context, statistic, code string, duration time.Duration) {
	status := StatusOK
	if code != StatusOK {
		status = StatusError
	}

	attrs := metric.WithAttributes(
		attribute.String(attrStatistic, statistic),
		attribute.String(attrStatus, status),
	)

	cm.computations.Add(ctx, 1, attrs)
	cm.duration.Record(ctx, duration.Seconds(), attrs)

	if status == StatusError {
		cm.errors.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrStatistic, statistic),
			attribute.String(attrCode, code),
		))
	}
}

// RecordSample records the length of a sample handed to the engine.
func (cm *ComputeMetrics) RecordSample(ctx context.Context, n int) {
	cm.sampleSize.Record(ctx, int64(n))
}
