package stats

import "math"

const (
	opCovariance  = "covariance"
	opCorrelation = "correlation"
	opRegression  = "linear_regression"
	opBoxplot     = "boxplot"
)

// whiskerFactor scales the IQR to place the boxplot whiskers.
const whiskerFactor = 1.5

// LinearFit is the least-squares line y = Slope·x + Intercept.
type LinearFit struct {
	Slope     float64 `json:"slope"     yaml:"slope"`
	Intercept float64 `json:"intercept" yaml:"intercept"`
}

// At evaluates the fitted line at x.
func (f LinearFit) At(x float64) float64 {
	return f.Slope*x + f.Intercept
}

var nanFit = LinearFit{Slope: nan, Intercept: nan}

// Boxplot is the five-number summary of a sample plus Tukey whiskers.
type Boxplot struct {
	High         float64 `json:"q3"            yaml:"q3"`
	Centre       float64 `json:"median"        yaml:"median"`
	Low          float64 `json:"q1"            yaml:"q1"`
	UpperOutlier float64 `json:"upper_whisker" yaml:"upper_whisker"`
	LowerOutlier float64 `json:"lower_whisker" yaml:"lower_whisker"`
	Max          float64 `json:"max"           yaml:"max"`
	Min          float64 `json:"min"           yaml:"min"`
}

var nanBoxplot = Boxplot{
	High: nan, Centre: nan, Low: nan,
	UpperOutlier: nan, LowerOutlier: nan,
	Max: nan, Min: nan,
}

func pairValid(x, y []float64) bool {
	return len(x) != 0 && len(x) == len(y)
}

// Covariance returns the population covariance Σ(x−x̄)(y−ȳ)/n.
// x and y must be non-empty and of equal length.
func Covariance(x, y []float64) (float64, error) {
	if !pairValid(x, y) {
		return nan, fail(opCovariance, CodeInvalidParams)
	}

	meanX := arithmeticMean(x)
	meanY := arithmeticMean(y)

	if math.IsNaN(meanX) || math.IsNaN(meanY) {
		return nan, fail(opCovariance, CodeNaN)
	}

	var total float64
	for i := range x {
		total += (x[i] - meanX) * (y[i] - meanY)
	}

	return total / float64(len(x)), nil
}

// Correlation returns the Pearson correlation coefficient of x and y.
// A constant input has zero deviation and fails with CodeZeroDivision.
func Correlation(x, y []float64) (float64, error) {
	if !pairValid(x, y) {
		return nan, fail(opCorrelation, CodeInvalidParams)
	}

	cov, err := Covariance(x, y)
	if err != nil {
		return nan, fail(opCorrelation, CodeOf(err))
	}

	stdX, errX := standardDeviation(x)
	stdY, errY := standardDeviation(y)

	if errX != nil || errY != nil || math.IsNaN(stdX) || math.IsNaN(stdY) {
		return nan, fail(opCorrelation, CodeNaN)
	}

	if stdX == 0 || stdY == 0 {
		return nan, fail(opCorrelation, CodeZeroDivision)
	}

	r := cov / (stdX * stdY)
	if math.IsNaN(r) {
		return nan, fail(opCorrelation, CodeNaN)
	}

	return r, nil
}

// LinearRegression fits y = m·x + q by ordinary least squares:
//
//	m = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	q = (Σy − m·Σx) / n
//
// A zero denominator (all x equal) fails with CodeZeroDivision.
func LinearRegression(x, y []float64) (LinearFit, error) {
	if !pairValid(x, y) {
		return nanFit, fail(opRegression, CodeInvalidParams)
	}

	n := float64(len(x))
	sumX := pairwiseSum(x)
	sumY := pairwiseSum(y)

	var sumXY, sumXX float64
	for i := range x {
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return nanFit, fail(opRegression, CodeZeroDivision)
	}

	slope := (n*sumXY - sumX*sumY) / denominator

	return LinearFit{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / n,
	}, nil
}

// BoxplotOf summarises sample with its quartiles, extremes and whiskers at
// 1.5·IQR beyond the box.
func BoxplotOf(sample []float64) (Boxplot, error) {
	if len(sample) == 0 {
		return nanBoxplot, fail(opBoxplot, CodeInvalidParams)
	}

	sorted := sortedCopy(sample)
	q1 := quantileSorted(sorted, Quartiles, 1)
	q3 := quantileSorted(sorted, Quartiles, 3)
	iqr := q3 - q1
	lo, _ := Min(sample)
	hi, _ := Max(sample)

	box := Boxplot{
		High:         q3,
		Centre:       medianSorted(sorted),
		Low:          q1,
		UpperOutlier: q3 + whiskerFactor*iqr,
		LowerOutlier: q1 - whiskerFactor*iqr,
		Max:          hi,
		Min:          lo,
	}

	return box, nil
}
