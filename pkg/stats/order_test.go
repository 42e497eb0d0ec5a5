package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{name: "odd", input: []float64{1, 2, 3, 4, 5}, expected: 3},
		{name: "even", input: []float64{1, 2, 3, 4}, expected: 2.5},
		{name: "single", input: []float64{7}, expected: 7},
		{name: "unsorted", input: []float64{9, 1, 5, 3, 7}, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Median(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)
		})
	}
}

func TestMedian_DoesNotMutate(t *testing.T) {
	t.Parallel()

	input := []float64{9, 1, 5}
	_, err := Median(input)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 1, 5}, input)
}

func TestMedian_Empty(t *testing.T) {
	t.Parallel()

	got, err := Median(nil)
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.True(t, math.IsNaN(got))
}

func TestQuantile(t *testing.T) {
	t.Parallel()

	seq := makeSequence(10)

	tests := []struct {
		name      string
		divisions int
		position  int
		input     []float64
		expected  float64
	}{
		// rank = 1·11/4 = 2.75 → 2 + 0.75·(3−2)
		{name: "q1_of_1_to_10", divisions: 4, position: 1, input: seq, expected: 2.75},
		{name: "q3_of_1_to_10", divisions: 4, position: 3, input: seq, expected: 8.25},
		{name: "p90_of_1_to_10", divisions: 100, position: 90, input: seq, expected: 9.9},
		{name: "p10_of_1_to_10", divisions: 100, position: 10, input: seq, expected: 1.1},
		{name: "clamps_to_min", divisions: 100, position: 1, input: []float64{4, 2, 8}, expected: 2},
		{name: "clamps_to_max", divisions: 100, position: 99, input: []float64{4, 2, 8}, expected: 8},
		{name: "single_element", divisions: 4, position: 3, input: []float64{6}, expected: 6},
		{name: "exact_rank", divisions: 4, position: 1, input: []float64{3, 1, 2}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Quantile(tt.divisions, tt.position, tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, delta)
		})
	}
}

func TestQuantile_HalfEqualsMedian(t *testing.T) {
	t.Parallel()

	samples := [][]float64{
		{1},
		{2, 1},
		{3, 1, 2},
		{1, 2, 3, 4},
		{10, -4, 3.5, 8, 0, 2},
		makeSequence(101),
	}

	for _, sample := range samples {
		q, err := Quantile(4, 2, sample)
		require.NoError(t, err)

		m, err := Median(sample)
		require.NoError(t, err)

		assert.InDelta(t, m, q, delta)
	}
}

func TestQuantile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		divisions int
		position  int
		input     []float64
		expected  error
	}{
		{name: "position_equals_divisions", divisions: 4, position: 4, input: []float64{1}, expected: ErrOutOfRange},
		{name: "position_past_divisions", divisions: 4, position: 7, input: []float64{1}, expected: ErrOutOfRange},
		{name: "position_zero", divisions: 4, position: 0, input: []float64{1}, expected: ErrInvalidParams},
		{name: "position_negative", divisions: 4, position: -1, input: []float64{1}, expected: ErrInvalidParams},
		{name: "empty_sample", divisions: 4, position: 1, input: nil, expected: ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Quantile(tt.divisions, tt.position, tt.input)
			require.ErrorIs(t, err, tt.expected)
			assert.True(t, math.IsNaN(got))
		})
	}
}

func TestQuartileValues(t *testing.T) {
	t.Parallel()

	q, err := QuartileValues(makeSequence(10))
	require.NoError(t, err)
	assert.InDelta(t, 2.75, q.Q1, delta)
	assert.InDelta(t, 5.5, q.Q2, delta)
	assert.InDelta(t, 8.25, q.Q3, delta)

	q, err = QuartileValues(nil)
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.True(t, math.IsNaN(q.Q1))
	assert.True(t, math.IsNaN(q.Q2))
	assert.True(t, math.IsNaN(q.Q3))
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	got, err := Percentile(50, makeSequence(9))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got, delta)

	_, err = Percentile(100, makeSequence(9))
	assert.ErrorIs(t, err, ErrOutOfRange)
}
