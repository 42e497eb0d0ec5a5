package stats

import "math"

const (
	opMedian    = "median"
	opQuantile  = "quantile"
	opQuartiles = "quartiles"
)

// Common division counts for Quantile.
const (
	Quartiles   = 4
	Deciles     = 10
	Percentiles = 100
)

// Median returns the middle order statistic of sample, or the average of the
// two central ones when the length is even.
func Median(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opMedian, CodeInvalidParams)
	}

	return medianSorted(sortedCopy(sample)), nil
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2

	if n%2 != 0 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// Quantile returns the position-th of divisions quantiles of sample
// (divisions 4 gives quartiles, 100 percentiles). position must lie in
// [1, divisions-1]: a position at or past divisions fails with
// CodeOutOfRange, a position below one with CodeInvalidParams.
//
// The rank is position·(n+1)/divisions on the 1-based sorted sample and
// fractional ranks interpolate linearly between neighbours. Ranks that fall
// before the first or past the last element clamp to the minimum or maximum.
func Quantile(divisions, position int, sample []float64) (float64, error) {
	if position >= divisions {
		return nan, fail(opQuantile, CodeOutOfRange)
	}

	if position < 1 {
		return nan, fail(opQuantile, CodeInvalidParams)
	}

	if len(sample) == 0 {
		return nan, fail(opQuantile, CodeInvalidParams)
	}

	return quantileSorted(sortedCopy(sample), divisions, position), nil
}

func quantileSorted(sorted []float64, divisions, position int) float64 {
	n := len(sorted)
	rank := float64(position) * float64(n+1) / float64(divisions)
	whole := math.Floor(rank)
	k := int(whole)

	switch {
	case k >= n:
		return sorted[n-1]
	case k <= 0:
		return sorted[0]
	}

	lower := sorted[k-1]

	return lower + (rank-whole)*(sorted[k]-lower)
}

// QuartileSet holds the three quartiles of a sample.
type QuartileSet struct {
	Q1 float64
	Q2 float64
	Q3 float64
}

// QuartileValues returns the first, second and third quartiles of sample,
// sorting it only once.
func QuartileValues(sample []float64) (QuartileSet, error) {
	if len(sample) == 0 {
		return QuartileSet{Q1: nan, Q2: nan, Q3: nan}, fail(opQuartiles, CodeInvalidParams)
	}

	sorted := sortedCopy(sample)

	return QuartileSet{
		Q1: quantileSorted(sorted, Quartiles, 1),
		Q2: quantileSorted(sorted, Quartiles, 2),
		Q3: quantileSorted(sorted, Quartiles, 3),
	}, nil
}

// Percentile returns the p-th percentile, p in [1, 99].
func Percentile(p int, sample []float64) (float64, error) {
	return Quantile(Percentiles, p, sample)
}
