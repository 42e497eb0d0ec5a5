package stats

import (
	"math"
	"strings"
)

const opMean = "mean"

// MeanKind selects a measure of central tendency.
type MeanKind int

// Mean kinds.
const (
	MeanArithmetic MeanKind = iota
	MeanGeometric
	MeanHarmonic
	MeanQuadratic
	MeanExtremes
	MeanTrimean
	MeanMidhinge
)

var meanKindNames = map[MeanKind]string{
	MeanArithmetic: "arithmetic",
	MeanGeometric:  "geometric",
	MeanHarmonic:   "harmonic",
	MeanQuadratic:  "quadratic",
	MeanExtremes:   "extremes",
	MeanTrimean:    "trimean",
	MeanMidhinge:   "midhinge",
}

// MeanKinds lists every mean kind in declaration order.
func MeanKinds() []MeanKind {
	return []MeanKind{
		MeanArithmetic, MeanGeometric, MeanHarmonic, MeanQuadratic,
		MeanExtremes, MeanTrimean, MeanMidhinge,
	}
}

func (k MeanKind) String() string {
	if name, ok := meanKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// ParseMeanKind maps a name such as "harmonic" to its kind.
func ParseMeanKind(name string) (MeanKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for kind, kindName := range meanKindNames {
		if kindName == name {
			return kind, nil
		}
	}

	return 0, fail("parse mean kind", CodeInvalidParams)
}

// Mean computes the mean of the given kind.
//
//	arithmetic  Σx/n
//	geometric   (Πx)^(1/n); a negative product fails, a zero product yields 0
//	harmonic    n/Σ(1/x); a zero element fails with CodeZeroDivision
//	quadratic   √(Σx²/n)
//	extremes    (min+max)/2; needs at least two elements
//	trimean     (Q1+2·Q2+Q3)/4
//	midhinge    (Q1+Q3)/2
func Mean(kind MeanKind, sample []float64) (float64, error) {
	if len(sample) == 0 {
		return nan, fail(opMean, CodeInvalidParams)
	}

	switch kind {
	case MeanArithmetic:
		return arithmeticMean(sample), nil
	case MeanGeometric:
		return geometricMean(sample)
	case MeanHarmonic:
		return harmonicMean(sample)
	case MeanQuadratic:
		return quadraticMean(sample), nil
	case MeanExtremes:
		return extremesMean(sample)
	case MeanTrimean:
		q := quartilesOf(sample)

		return (q.Q1 + 2*q.Q2 + q.Q3) / 4, nil
	case MeanMidhinge:
		q := quartilesOf(sample)

		return (q.Q1 + q.Q3) / 2, nil
	default:
		return nan, fail(opMean, CodeInvalidParams)
	}
}

// arithmeticMean expects a non-empty sample.
func arithmeticMean(sample []float64) float64 {
	return pairwiseSum(sample) / float64(len(sample))
}

func geometricMean(sample []float64) (float64, error) {
	product, _ := Product(sample)

	switch {
	case product < 0:
		return nan, fail(opMean, CodeMathDomain)
	case product == 0:
		return 0, nil
	}

	return math.Pow(product, 1/float64(len(sample))), nil
}

func harmonicMean(sample []float64) (float64, error) {
	recip, err := ReciprocalSum(sample)
	if err != nil {
		return nan, fail(opMean, CodeOf(err))
	}

	return float64(len(sample)) / recip, nil
}

func quadraticMean(sample []float64) float64 {
	squares, _ := SumOfSquares(sample)

	return math.Sqrt(squares / float64(len(sample)))
}

func extremesMean(sample []float64) (float64, error) {
	if len(sample) < 2 {
		return nan, fail(opMean, CodeInvalidParams)
	}

	lo, _ := Min(sample)
	hi, _ := Max(sample)

	return (lo + hi) / 2, nil
}

// quartilesOf expects a non-empty sample.
func quartilesOf(sample []float64) QuartileSet {
	q, _ := QuartileValues(sample)

	return q
}
