package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 10}

	tests := []struct {
		kind     MeanKind
		expected float64
	}{
		{kind: MeanArithmetic, expected: 4},
		{kind: MeanGeometric, expected: 2.9925557394776896},
		{kind: MeanHarmonic, expected: 2.290076335877863},
		{kind: MeanQuadratic, expected: 5.0990195135927845},
		{kind: MeanExtremes, expected: 5.5},
		{kind: MeanTrimean, expected: 3.625},
		{kind: MeanMidhinge, expected: 4.25},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			got, err := Mean(tt.kind, sample)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)
		})
	}
}

func TestMean_ArithmeticMatchesSum(t *testing.T) {
	t.Parallel()

	samples := [][]float64{{42}, {0.1, 0.2, 0.3}, makeSequence(1000), {-5, 5, 1e10}}

	for _, sample := range samples {
		sum, err := Sum(sample)
		require.NoError(t, err)

		mean, err := Mean(MeanArithmetic, sample)
		require.NoError(t, err)

		assert.InDelta(t, sum/float64(len(sample)), mean, 1e-6)
	}
}

func TestMean_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		kind     MeanKind
		input    []float64
		expected error
	}{
		{name: "harmonic_zero_element", kind: MeanHarmonic, input: []float64{1, 2, 0, 4}, expected: ErrZeroDivision},
		{name: "geometric_negative_product", kind: MeanGeometric, input: []float64{-1, -2, -3}, expected: ErrMathDomain},
		{name: "extremes_single", kind: MeanExtremes, input: []float64{1}, expected: ErrInvalidParams},
		{name: "unknown_kind", kind: MeanKind(99), input: []float64{1, 2}, expected: ErrInvalidParams},
		{name: "empty", kind: MeanArithmetic, input: nil, expected: ErrInvalidParams},
		{name: "empty_trimean", kind: MeanTrimean, input: []float64{}, expected: ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Mean(tt.kind, tt.input)
			require.ErrorIs(t, err, tt.expected)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestMean_GeometricZeroProduct(t *testing.T) {
	t.Parallel()

	got, err := Mean(MeanGeometric, []float64{3, 0, -2})
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestMean_GeometricEvenNegatives(t *testing.T) {
	t.Parallel()

	got, err := Mean(MeanGeometric, []float64{-2, -8})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, got, delta)
}

func TestParseMeanKind(t *testing.T) {
	t.Parallel()

	for _, kind := range MeanKinds() {
		parsed, err := ParseMeanKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	parsed, err := ParseMeanKind("  Harmonic ")
	require.NoError(t, err)
	assert.Equal(t, MeanHarmonic, parsed)

	_, err = ParseMeanKind("median")
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, "unknown", MeanKind(-1).String())
}
