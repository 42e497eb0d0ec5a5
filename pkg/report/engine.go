package report

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/staz/pkg/observability"
	"github.com/Sumatoshi-tech/staz/pkg/stats"
)

// Summary titles.
const (
	TitleDescribe     = "describe"
	TitleRelationship = "relationship"
	TitleBoxplot      = "boxplot"
	TitleRegression   = "regression"
)

const (
	spanDescribe  = "staz.describe"
	spanRelate    = "staz.relate"
	spanBoxplot   = "staz.boxplot"
	spanFit       = "staz.regression"
	spanStatistic = "staz.statistic"

	attrSampleSize = "sample.size"
	attrStatistic  = "statistic"
	attrFailed     = "statistics.failed"
)

// Engine computes statistics with tracing, metrics and debug logging around
// every call. The zero value is not usable; build one with NewEngine.
type Engine struct {
	tracer  trace.Tracer
	metrics *observability.ComputeMetrics
	logger  *slog.Logger
}

// NewEngine creates an Engine. Nil arguments disable the matching concern.
func NewEngine(tracer trace.Tracer, metrics *observability.ComputeMetrics, logger *slog.Logger) *Engine {
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer("")
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{tracer: tracer, metrics: metrics, logger: logger}
}

// Compute runs fn as the statistic called name.
func (e *Engine) Compute(ctx context.Context, name string, fn func() (float64, error)) Value {
	start := time.Now()
	v, err := fn()
	e.observe(ctx, name, err, time.Since(start))

	return newValue(name, v, err)
}

func (e *Engine) observe(ctx context.Context, name string, err error, d time.Duration) {
	code := stats.CodeOf(err)

	if e.metrics != nil {
		e.metrics.RecordComputation(ctx, name, code.String(), d)
	}

	if err != nil {
		e.logger.DebugContext(ctx, "statistic failed",
			slog.String(attrStatistic, name),
			slog.String("code", code.String()),
			slog.Any("error", err),
		)
	}
}

// Single computes one statistic over a sample of n values.
func (e *Engine) Single(ctx context.Context, name string, n int, fn func() (float64, error)) Summary {
	ctx, span := e.tracer.Start(ctx, spanStatistic, trace.WithAttributes(
		attribute.String(attrStatistic, name),
		attribute.Int(attrSampleSize, n),
	))
	defer span.End()

	e.recordSample(ctx, n)

	s := Summary{Title: name, Count: n}
	s.add(e.Compute(ctx, name, fn))
	finishSpan(span, s)

	return s
}

// Describe computes every univariate statistic over sample.
func (e *Engine) Describe(ctx context.Context, sample []float64) Summary {
	ctx, span := e.tracer.Start(ctx, spanDescribe, trace.WithAttributes(
		attribute.Int(attrSampleSize, len(sample)),
	))
	defer span.End()

	e.recordSample(ctx, len(sample))

	s := Summary{Title: TitleDescribe, Count: len(sample)}

	s.add(
		e.Compute(ctx, "sum", func() (float64, error) { return stats.Sum(sample) }),
		e.Compute(ctx, "min", func() (float64, error) { return stats.Min(sample) }),
		e.Compute(ctx, "max", func() (float64, error) { return stats.Max(sample) }),
	)

	for _, kind := range stats.MeanKinds() {
		s.add(e.Compute(ctx, "mean."+kind.String(), func() (float64, error) {
			return stats.Mean(kind, sample)
		}))
	}

	s.add(
		e.Compute(ctx, "median", func() (float64, error) { return stats.Median(sample) }),
		e.Compute(ctx, "mode", func() (float64, error) { return stats.Mode(sample) }),
		e.Compute(ctx, "variance", func() (float64, error) { return stats.Variance(sample) }),
	)

	for _, kind := range stats.DeviationKinds() {
		s.add(e.Compute(ctx, "deviation."+kind.String(), func() (float64, error) {
			return stats.Deviation(kind, sample)
		}))
	}

	for _, kind := range stats.RangeKinds() {
		s.add(e.Compute(ctx, "range."+kind.String(), func() (float64, error) {
			return stats.Range(kind, sample)
		}))
	}

	s.add(e.quartiles(ctx, sample)...)
	s.add(e.boxplot(ctx, sample)...)

	finishSpan(span, s)

	return s
}

func (e *Engine) quartiles(ctx context.Context, sample []float64) []Value {
	start := time.Now()
	q, err := stats.QuartileValues(sample)
	e.observe(ctx, "quartiles", err, time.Since(start))

	return []Value{
		newValue("q1", q.Q1, err),
		newValue("q2", q.Q2, err),
		newValue("q3", q.Q3, err),
	}
}

func (e *Engine) boxplot(ctx context.Context, sample []float64) []Value {
	start := time.Now()
	b, err := stats.BoxplotOf(sample)
	e.observe(ctx, "boxplot", err, time.Since(start))

	return []Value{
		newValue("boxplot.lower_whisker", b.LowerOutlier, err),
		newValue("boxplot.upper_whisker", b.UpperOutlier, err),
	}
}

// Relate computes the bivariate statistics of the paired samples x and y.
func (e *Engine) Relate(ctx context.Context, x, y []float64) Summary {
	ctx, span := e.tracer.Start(ctx, spanRelate, trace.WithAttributes(
		attribute.Int(attrSampleSize, len(x)),
	))
	defer span.End()

	e.recordSample(ctx, len(x))

	s := Summary{Title: TitleRelationship, Count: len(x)}

	s.add(
		e.Compute(ctx, "covariance", func() (float64, error) { return stats.Covariance(x, y) }),
		e.Compute(ctx, "correlation", func() (float64, error) { return stats.Correlation(x, y) }),
	)

	s.add(e.fitValues(ctx, x, y)...)

	finishSpan(span, s)

	return s
}

// Regression computes the least-squares line through the pairs of x and y.
func (e *Engine) Regression(ctx context.Context, x, y []float64) Summary {
	ctx, span := e.tracer.Start(ctx, spanFit, trace.WithAttributes(
		attribute.Int(attrSampleSize, len(x)),
	))
	defer span.End()

	e.recordSample(ctx, len(x))

	s := Summary{Title: TitleRegression, Count: len(x)}
	s.add(e.fitValues(ctx, x, y)...)
	finishSpan(span, s)

	return s
}

func (e *Engine) fitValues(ctx context.Context, x, y []float64) []Value {
	start := time.Now()
	fit, err := stats.LinearRegression(x, y)
	e.observe(ctx, "regression", err, time.Since(start))

	return []Value{
		newValue("regression.slope", fit.Slope, err),
		newValue("regression.intercept", fit.Intercept, err),
	}
}

// Boxplot computes the five-number summary of sample and its whisker fences.
func (e *Engine) Boxplot(ctx context.Context, sample []float64) Summary {
	ctx, span := e.tracer.Start(ctx, spanBoxplot, trace.WithAttributes(
		attribute.Int(attrSampleSize, len(sample)),
	))
	defer span.End()

	e.recordSample(ctx, len(sample))

	start := time.Now()
	b, err := stats.BoxplotOf(sample)
	e.observe(ctx, "boxplot", err, time.Since(start))

	s := Summary{Title: TitleBoxplot, Count: len(sample)}
	s.add(
		newValue("min", b.Min, err),
		newValue("lower_whisker", b.LowerOutlier, err),
		newValue("q1", b.Low, err),
		newValue("median", b.Centre, err),
		newValue("q3", b.High, err),
		newValue("upper_whisker", b.UpperOutlier, err),
		newValue("max", b.Max, err),
	)
	finishSpan(span, s)

	return s
}

func (e *Engine) recordSample(ctx context.Context, n int) {
	if e.metrics != nil {
		e.metrics.RecordSample(ctx, n)
	}
}

func finishSpan(span trace.Span, s Summary) {
	failed := len(s.Failed())
	span.SetAttributes(attribute.Int(attrFailed, failed))

	if failed == len(s.Values) && failed > 0 {
		span.SetStatus(codes.Error, s.Values[0].Code.Message())
	}
}
