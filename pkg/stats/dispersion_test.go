package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariance(t *testing.T) {
	t.Parallel()

	got, err := Variance([]float64{1, 2, 3, 4, 10})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, delta)
}

func TestVariance_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0, 5, -3, 1024} {
		got, err := Variance([]float64{x, x, x, x, x})
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

func TestVariance_Deterministic(t *testing.T) {
	t.Parallel()

	sample := []float64{0.3, 1e-7, 42, -17.25, 3.3333}

	first, err := Variance(sample)
	require.NoError(t, err)

	second, err := Variance(sample)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []float64{0.3, 1e-7, 42, -17.25, 3.3333}, sample)
}

func TestVariance_Failures(t *testing.T) {
	t.Parallel()

	got, err := Variance(nil)
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.True(t, math.IsNaN(got))

	got, err = Variance([]float64{1, math.NaN(), 3})
	require.ErrorIs(t, err, ErrNaN)
	assert.True(t, math.IsNaN(got))

	// +Inf and −Inf cancel into a NaN mean.
	_, err = Variance([]float64{math.Inf(1), math.Inf(-1)})
	assert.ErrorIs(t, err, ErrNaN)
}

func TestDeviation(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 10}

	tests := []struct {
		kind     DeviationKind
		expected float64
	}{
		{kind: DeviationStandard, expected: math.Sqrt(10)},
		{kind: DeviationAverage, expected: 2.4},
		{kind: DeviationRelative, expected: 0.7905694150420949},
		{kind: DeviationMADMean, expected: 2.4},
		{kind: DeviationMADMedian, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Deviation(tt.kind, sample)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)
		})
	}
}

func TestDeviation_DoesNotMutate(t *testing.T) {
	t.Parallel()

	for _, kind := range DeviationKinds() {
		sample := []float64{10, 4, 3, 2, 1}

		_, err := Deviation(kind, sample)
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 4, 3, 2, 1}, sample, kind.String())
	}
}

func TestDeviation_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     DeviationKind
		input    []float64
		expected error
	}{
		{name: "relative_zero_mean", kind: DeviationRelative, input: []float64{-1, 1}, expected: ErrZeroDivision},
		{name: "relative_nan_mean", kind: DeviationRelative, input: []float64{1, math.NaN()}, expected: ErrNaN},
		{name: "standard_nan", kind: DeviationStandard, input: []float64{math.NaN()}, expected: ErrNaN},
		{name: "mad_mean_nan", kind: DeviationMADMean, input: []float64{math.NaN(), 2}, expected: ErrNaN},
		{name: "unknown_kind", kind: DeviationKind(42), input: []float64{1}, expected: ErrInvalidParams},
		{name: "empty", kind: DeviationStandard, input: nil, expected: ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Deviation(tt.kind, tt.input)
			require.ErrorIs(t, err, tt.expected)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 10}

	tests := []struct {
		kind     RangeKind
		expected float64
	}{
		{kind: RangeStandard, expected: 9},
		{kind: RangeInterquartile, expected: 5.5},
		{kind: RangePercentile1090, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Range(tt.kind, sample)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)
		})
	}
}

func TestRange_StandardIsMaxMinusMin(t *testing.T) {
	t.Parallel()

	samples := [][]float64{{7}, {3, -1}, {0.5, 0.25, 8, -3.75}, makeSequence(33)}

	for _, sample := range samples {
		lo, err := Min(sample)
		require.NoError(t, err)

		hi, err := Max(sample)
		require.NoError(t, err)

		got, err := Range(RangeStandard, sample)
		require.NoError(t, err)
		assert.InDelta(t, hi-lo, got, delta)
	}
}

func TestRange_Failures(t *testing.T) {
	t.Parallel()

	_, err := Range(RangeStandard, nil)
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = Range(RangeKind(7), []float64{1})
	require.ErrorIs(t, err, ErrInvalidParams)

	got, err := Range(RangeStandard, []float64{math.Inf(1)})
	require.ErrorIs(t, err, ErrNaN)
	assert.True(t, math.IsNaN(got))
}

func TestMode(t *testing.T) {
	t.Parallel()

	tenth, fifth := 0.1, 0.2
	drifted := tenth + fifth // 0.30000000000000004 at run time

	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "single", input: []float64{5}, expected: 5},
		{name: "clear_winner", input: []float64{1, 3, 3, 2, 3}, expected: 3},
		{name: "tie_first_wins", input: []float64{1, 2, 2, 3, 3}, expected: 2},
		{name: "all_distinct", input: []float64{4, 5, 6}, expected: 4},
		{name: "exact_equality", input: []float64{0.3, drifted, drifted}, expected: drifted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Mode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Mode(nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestParseKinds(t *testing.T) {
	t.Parallel()

	for _, kind := range DeviationKinds() {
		parsed, err := ParseDeviationKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	for _, kind := range RangeKinds() {
		parsed, err := ParseRangeKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseDeviationKind("bogus")
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = ParseRangeKind("bogus")
	require.ErrorIs(t, err, ErrInvalidParams)
}
