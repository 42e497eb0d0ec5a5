package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCovariance(t *testing.T) {
	t.Parallel()

	got, err := Covariance([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, delta)

	got, err = Covariance([]float64{1, 2, 3}, []float64{5, 5, 5})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCovariance_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y     []float64
		expected error
	}{
		{name: "unequal_length", x: []float64{1, 2}, y: []float64{1}, expected: ErrInvalidParams},
		{name: "empty", x: []float64{}, y: []float64{}, expected: ErrInvalidParams},
		{name: "nil_y", x: []float64{1}, y: nil, expected: ErrInvalidParams},
		{name: "nan_mean", x: []float64{1, math.NaN()}, y: []float64{1, 2}, expected: ErrNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Covariance(tt.x, tt.y)
			require.ErrorIs(t, err, tt.expected)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestCorrelation(t *testing.T) {
	t.Parallel()

	x := []float64{2, 9, 4, 7.5, -1, 3}

	got, err := Correlation(x, x)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, delta)

	negated := make([]float64, len(x))
	for i, v := range x {
		negated[i] = -3 * v
	}

	got, err = Correlation(x, negated)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, got, delta)
}

func TestCorrelation_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x, y     []float64
		expected error
	}{
		{name: "constant_y", x: []float64{1, 2, 3}, y: []float64{4, 4, 4}, expected: ErrZeroDivision},
		{name: "constant_x", x: []float64{0, 0}, y: []float64{1, 2}, expected: ErrZeroDivision},
		{name: "unequal_length", x: []float64{1, 2, 3}, y: []float64{1, 2}, expected: ErrInvalidParams},
		{name: "nil", x: nil, y: nil, expected: ErrInvalidParams},
		{name: "nan", x: []float64{1, 2}, y: []float64{math.NaN(), 1}, expected: ErrNaN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Correlation(tt.x, tt.y)
			require.ErrorIs(t, err, tt.expected)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestLinearRegression(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		x, y      []float64
		slope     float64
		intercept float64
	}{
		{name: "identity", x: []float64{1, 2, 3}, y: []float64{1, 2, 3}, slope: 1, intercept: 0},
		{name: "affine", x: []float64{1, 2, 3, 4, 5}, y: []float64{3, 5, 7, 9, 11}, slope: 2, intercept: 1},
		{name: "negative_slope", x: []float64{0, 1, 2}, y: []float64{4, 2, 0}, slope: -2, intercept: 4},
		// Best fit through (0,0),(1,1),(2,1): m = 0.5, q = 1/6.
		{name: "noisy", x: []float64{0, 1, 2}, y: []float64{0, 1, 1}, slope: 0.5, intercept: 1.0 / 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fit, err := LinearRegression(tt.x, tt.y)
			require.NoError(t, err)
			assert.InDelta(t, tt.slope, fit.Slope, delta)
			assert.InDelta(t, tt.intercept, fit.Intercept, delta)
		})
	}
}

func TestLinearRegression_Failures(t *testing.T) {
	t.Parallel()

	fit, err := LinearRegression([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrZeroDivision)
	assert.True(t, math.IsNaN(fit.Slope))
	assert.True(t, math.IsNaN(fit.Intercept))

	fit, err = LinearRegression([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.True(t, math.IsNaN(fit.Slope))

	_, err = LinearRegression(nil, nil)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestLinearFit_At(t *testing.T) {
	t.Parallel()

	fit := LinearFit{Slope: 2, Intercept: -1}
	assert.InDelta(t, 5.0, fit.At(3), delta)
}

func TestBoxplotOf(t *testing.T) {
	t.Parallel()

	box, err := BoxplotOf([]float64{10, 1, 4, 2, 3})
	require.NoError(t, err)

	assert.InDelta(t, 7.0, box.High, delta)
	assert.InDelta(t, 3.0, box.Centre, delta)
	assert.InDelta(t, 1.5, box.Low, delta)
	assert.InDelta(t, 15.25, box.UpperOutlier, delta)
	assert.InDelta(t, -6.75, box.LowerOutlier, delta)
	assert.InDelta(t, 10.0, box.Max, delta)
	assert.InDelta(t, 1.0, box.Min, delta)
}

func TestBoxplotOf_Ordering(t *testing.T) {
	t.Parallel()

	samples := [][]float64{
		{1, 2, 3, 4},
		{4, 4, 4, 4},
		{-10, 3, 3.5, 100, 7, 8, 0},
		makeSequence(57),
	}

	for _, sample := range samples {
		box, err := BoxplotOf(sample)
		require.NoError(t, err)

		assert.LessOrEqual(t, box.Low, box.Centre)
		assert.LessOrEqual(t, box.Centre, box.High)
		assert.LessOrEqual(t, box.LowerOutlier, box.Low)
		assert.LessOrEqual(t, box.High, box.UpperOutlier)
		assert.LessOrEqual(t, box.Min, box.Low)
		assert.LessOrEqual(t, box.High, box.Max)
	}
}

func TestBoxplotOf_Empty(t *testing.T) {
	t.Parallel()

	box, err := BoxplotOf(nil)
	require.ErrorIs(t, err, ErrInvalidParams)

	for _, v := range []float64{box.High, box.Centre, box.Low, box.UpperOutlier, box.LowerOutlier, box.Max, box.Min} {
		assert.True(t, math.IsNaN(v))
	}
}
