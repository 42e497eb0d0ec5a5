// Package stats provides descriptive statistics over in-memory samples.
//
// Every function validates its own input and reports failure through an
// explicit error together with a NaN result (or an all-NaN record for
// composite results). Inputs are never modified; sorting happens on a copy.
// All variance-based statistics are population statistics (÷n, not ÷(n−1)).
package stats

import (
	"math"
	"slices"
)

// Operation names reported in *Error.Op.
const (
	opSum           = "sum"
	opSumOfSquares  = "sum_of_squares"
	opProduct       = "product"
	opReciprocalSum = "reciprocal_sum"
	opMin           = "min"
	opMax           = "max"
	opCopy          = "copy"
)

var nan = math.NaN()

// Number is the set of element types accepted by Floats.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Floats converts a sample of any numeric type into a new []float64.
// A nil input yields nil, which every statistic rejects as invalid.
func Floats[T Number](values []T) []float64 {
	if values == nil {
		return nil
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}

// Sum returns the total of sample using pairwise summation, which keeps the
// rounding error growth logarithmic in the sample length.
func Sum(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opSum, CodeInvalidParams)
	}

	return pairwiseSum(sample), nil
}

func pairwiseSum(values []float64) float64 {
	switch len(values) {
	case 1:
		return values[0]
	case 2:
		return values[0] + values[1]
	}

	mid := len(values) / 2

	return pairwiseSum(values[:mid]) + pairwiseSum(values[mid:])
}

// SumOfSquares returns Σxᵢ².
func SumOfSquares(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opSumOfSquares, CodeInvalidParams)
	}

	var total float64
	for _, v := range sample {
		total += v * v
	}

	return total, nil
}

// Product returns Πxᵢ. Accumulation stops as soon as the partial product is
// exactly zero.
func Product(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opProduct, CodeInvalidParams)
	}

	product := 1.0

	for _, v := range sample {
		product *= v
		if product == 0 {
			return 0, nil
		}
	}

	return product, nil
}

// ReciprocalSum returns Σ1/xᵢ with Kahan compensated summation.
// Any element equal to zero fails with CodeZeroDivision.
func ReciprocalSum(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opReciprocalSum, CodeInvalidParams)
	}

	var sum, comp float64

	for _, v := range sample {
		if v == 0 {
			return nan, fail(opReciprocalSum, CodeZeroDivision)
		}

		y := 1/v - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	return sum, nil
}

// Min returns the smallest element of sample.
func Min(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opMin, CodeInvalidParams)
	}

	result := sample[0]

	for _, v := range sample[1:] {
		if v < result {
			result = v
		}
	}

	return result, nil
}

// Max returns the largest element of sample.
func Max(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opMax, CodeInvalidParams)
	}

	result := sample[0]

	for _, v := range sample[1:] {
		if v > result {
			result = v
		}
	}

	return result, nil
}

// Copy returns an independent duplicate of sample.
func Copy(sample []float64) ([]float64, error) {
	if len(sample) == 0 {
		return nil, fail(opCopy, CodeInvalidParams)
	}

	return slices.Clone(sample), nil
}

// ascending orders float64 values with plain IEEE comparisons. NaN compares
// equal to everything, so samples holding NaN sort in an unspecified order.
func ascending(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortedCopy returns an ascending copy of sample. Callers validate length.
func sortedCopy(sample []float64) []float64 {
	sorted, _ := Copy(sample)
	slices.SortFunc(sorted, ascending)

	return sorted
}
