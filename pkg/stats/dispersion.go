package stats

import (
	"math"
	"slices"
	"strings"
)

const (
	opVariance  = "variance"
	opDeviation = "deviation"
	opRange     = "range"
	opMode      = "mode"
)

// DeviationKind selects a measure of spread around a central value.
type DeviationKind int

// Deviation kinds. DeviationAverage and DeviationMADMean compute the same
// statistic, the average absolute distance from the arithmetic mean.
const (
	DeviationStandard DeviationKind = iota
	DeviationAverage
	DeviationRelative
	DeviationMADMean
	DeviationMADMedian
)

var deviationKindNames = map[DeviationKind]string{
	DeviationStandard:  "standard",
	DeviationAverage:   "average",
	DeviationRelative:  "relative",
	DeviationMADMean:   "mad-mean",
	DeviationMADMedian: "mad-median",
}

// DeviationKinds lists every deviation kind in declaration order.
func DeviationKinds() []DeviationKind {
	return []DeviationKind{
		DeviationStandard, DeviationAverage, DeviationRelative,
		DeviationMADMean, DeviationMADMedian,
	}
}

func (k DeviationKind) String() string {
	if name, ok := deviationKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseDeviationKind maps a name such as "mad-median" to its kind.
func ParseDeviationKind(name string) (DeviationKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for kind, kindName := range deviationKindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return 0, fail("parse deviation kind", CodeInvalidParams)
}

// RangeKind selects a width measure of a sample.
type RangeKind int

// Range kinds.
const (
	RangeStandard RangeKind = iota
	RangeInterquartile
	RangePercentile1090
)

var rangeKindNames = map[RangeKind]string{
	RangeStandard:       "standard",
	RangeInterquartile:  "interquartile",
	RangePercentile1090: "10-90",
}

// RangeKinds lists every range kind in declaration order.
func RangeKinds() []RangeKind {
	return []RangeKind{RangeStandard, RangeInterquartile, RangePercentile1090}
}

func (k RangeKind) String() string {
	if name, ok := rangeKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseRangeKind maps a name such as "interquartile" to its kind.
func ParseRangeKind(name string) (RangeKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for kind, kindName := range rangeKindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return 0, fail("parse range kind", CodeInvalidParams)
}

// Variance returns the population variance Σ(x−mean)²/n.
func Variance(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opVariance, CodeInvalidParams)
	}

	mean := arithmeticMean(sample)
	if math.IsNaN(mean) {
		return nan, fail(opVariance, CodeNaN)
	}

	return squaredDeviations(sample, mean) / float64(len(sample)), nil
}

func squaredDeviations(sample []float64, mean float64) float64 {
	var total float64

	for _, v := range sample {
		d := v - mean
		total += d * d
	}

	return total
}

// Deviation computes the spread measure of the given kind.
//
//	standard    √variance
//	average     Σ|x−mean|/n
//	relative    standard deviation / mean; a zero mean fails with CodeZeroDivision
//	mad-mean    Σ|x−mean|/n
//	mad-median  median of |x−median|
func Deviation(kind DeviationKind, sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opDeviation, CodeInvalidParams)
	}

	switch kind {
	case DeviationStandard:
		return standardDeviation(sample)
	case DeviationRelative:
		return relativeDeviation(sample)
	case DeviationAverage, DeviationMADMean:
		return meanAbsoluteDeviation(sample)
	case DeviationMADMedian:
		return medianAbsoluteDeviation(sample), nil
	default:
		return nan, fail(opDeviation, CodeInvalidParams)
	}
}

func standardDeviation(sample []float64) (float64, error) {
	variance, err := Variance(sample)
	if err != nil {
		return nan, fail(opDeviation, CodeOf(err))
	}

	return math.Sqrt(variance), nil
}

func relativeDeviation(sample []float64) (float64, error) {
	mean := arithmeticMean(sample)

	switch {
	case math.IsNaN(mean):
		return nan, fail(opDeviation, CodeNaN)
	case mean == 0:
		return nan, fail(opDeviation, CodeZeroDivision)
	}

	std, err := standardDeviation(sample)
	if err != nil {
		return nan, err
	}

	return std / mean, nil
}

func meanAbsoluteDeviation(sample []float64) (float64, error) {
	mean := arithmeticMean(sample)
	if math.IsNaN(mean) {
		return nan, fail(opDeviation, CodeNaN)
	}

	var total float64
	for _, v := range sample {
		total += math.Abs(v - mean)
	}

	return total / float64(len(sample)), nil
}

// medianAbsoluteDeviation works on a private copy; the caller's sample is
// left untouched.
func medianAbsoluteDeviation(sample []float64) float64 {
	sorted := sortedCopy(sample)
	center := medianSorted(sorted)

	for i, v := range sorted {
		sorted[i] = math.Abs(v - center)
	}

	slices.SortFunc(sorted, ascending)

	return medianSorted(sorted)
}

// Range computes the width measure of the given kind.
//
//	standard       max − min
//	interquartile  Q3 − Q1
//	10-90          P90 − P10
func Range(kind RangeKind, sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opRange, CodeInvalidParams)
	}

	var width float64

	switch kind {
	case RangeStandard:
		lo, _ := Min(sample)
		hi, _ := Max(sample)
		width = hi - lo
	case RangeInterquartile:
		q := quartilesOf(sample)
		width = q.Q3 - q.Q1
	case RangePercentile1090:
		sorted := sortedCopy(sample)
		width = quantileSorted(sorted, Percentiles, 90) - quantileSorted(sorted, Percentiles, 10)
	default:
		return nan, fail(opRange, CodeInvalidParams)
	}

	if math.IsNaN(width) {
		return nan, fail(opRange, CodeNaN)
	}

	return width, nil
}

// Mode returns the most frequent value of sample under exact equality.
// Ties go to the value that occurs first.
func Mode(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opMode, CodeInvalidParams)
	}

	best, bestCount := sample[0], 0

	for i, candidate := range sample {
		count := 0

		for _, v := range sample[i:] {
			if v == candidate {
				count++
			}
		}

		if count > bestCount {
			best, bestCount = candidate, count
		}
	}

	return best, nil
}
