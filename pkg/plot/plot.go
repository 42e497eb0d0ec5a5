// Package plot renders samples and fitted lines as self-contained HTML pages
// built on go-echarts.
package plot

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/staz/pkg/stats"
)

// ErrNoSeries is returned when a box plot is requested without any data.
var ErrNoSeries = errors.New("plot: no series")

const (
	outlierSymbolSize = 8
	pointSymbolSize   = 10
)

// Series is a named sample.
type Series struct {
	Name   string
	Values []float64
}

// Options controls page rendering.
type Options struct {
	Title string
	Theme Theme
}

// BoxChart builds one box per series with Tukey whiskers and the points
// beyond them drawn as outliers.
func BoxChart(o Options, series ...Series) (*charts.BoxPlot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	co := NewChartOpts(o.Theme)
	theme := GetThemeConfig(o.Theme)

	names := make([]string, 0, len(series))
	boxes := make([]opts.BoxPlotData, 0, len(series))

	var outliers []opts.ScatterData

	for idx, s := range series {
		b, err := stats.BoxplotOf(s.Values)
		if err != nil {
			return nil, fmt.Errorf("box %q: %w", s.Name, err)
		}

		low, high := whiskerEnds(s.Values, b)

		names = append(names, s.Name)
		boxes = append(boxes, opts.BoxPlotData{
			Name:  s.Name,
			Value: []float64{low, b.Low, b.Centre, b.High, high},
		})

		for _, v := range s.Values {
			if v < b.LowerOutlier || v > b.UpperOutlier {
				outliers = append(outliers, opts.ScatterData{Value: []any{idx, v}, SymbolSize: outlierSymbolSize})
			}
		}
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(o.Title)),
		charts.WithTitleOpts(co.Title(o.Title, "whiskers at 1.5 IQR")),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithGridOpts(co.Grid()),
		charts.WithXAxisOpts(co.CategoryAxis("")),
		charts.WithYAxisOpts(co.YAxis("value")),
		charts.WithLegendOpts(co.Legend()),
	)
	box.SetXAxis(names)
	box.AddSeries("box", boxes, charts.WithItemStyleOpts(opts.ItemStyle{BorderColor: theme.Box}))

	if len(outliers) > 0 {
		scatter := charts.NewScatter()
		scatter.AddSeries("outliers", outliers,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: theme.Outlier}),
		)
		box.Overlap(scatter)
	}

	return box, nil
}

// whiskerEnds returns the most extreme values still inside the fences.
func whiskerEnds(values []float64, b stats.Boxplot) (low, high float64) {
	low, high = b.Low, b.High

	for _, v := range values {
		if v >= b.LowerOutlier && v < low {
			low = v
		}

		if v <= b.UpperOutlier && v > high {
			high = v
		}
	}

	return low, high
}

// RegressionChart builds a scatter of the pairs with the least-squares line
// drawn over it. A degenerate fit (constant x) leaves only the scatter.
func RegressionChart(o Options, x, y []float64) (*charts.Scatter, error) {
	fit, err := stats.LinearRegression(x, y)
	if err != nil && !errors.Is(err, stats.ErrZeroDivision) {
		return nil, fmt.Errorf("regression: %w", err)
	}

	co := NewChartOpts(o.Theme)
	theme := GetThemeConfig(o.Theme)

	points := make([]opts.ScatterData, len(x))
	for i := range x {
		points[i] = opts.ScatterData{Value: []float64{x[i], y[i]}, SymbolSize: pointSymbolSize}
	}

	subtitle := "fit undefined"
	if err == nil {
		subtitle = fmt.Sprintf("y = %.4g·x + %.4g", fit.Slope, fit.Intercept)
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(co.Init(o.Title)),
		charts.WithTitleOpts(co.Title(o.Title, subtitle)),
		charts.WithTooltipOpts(co.Tooltip("item")),
		charts.WithGridOpts(co.Grid()),
		charts.WithXAxisOpts(co.ValueXAxis("x")),
		charts.WithYAxisOpts(co.YAxis("y")),
		charts.WithLegendOpts(co.Legend()),
	)
	scatter.AddSeries("samples", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: theme.Points}),
	)

	if err == nil {
		lo, hi := slices.Min(x), slices.Max(x)

		line := charts.NewLine()
		line.AddSeries("fit", []opts.LineData{
			{Value: []float64{lo, fit.At(lo)}},
			{Value: []float64{hi, fit.At(hi)}},
		},
			charts.WithLineStyleOpts(opts.LineStyle{Color: theme.Fit}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: theme.Fit}),
		)
		scatter.Overlap(line)
	}

	return scatter, nil
}

// Boxes writes an HTML page holding the box chart of series.
func Boxes(w io.Writer, o Options, series ...Series) error {
	chart, err := BoxChart(o, series...)
	if err != nil {
		return err
	}

	return renderPage(w, o, chart)
}

// Regression writes an HTML page holding the regression chart of x and y.
func Regression(w io.Writer, o Options, x, y []float64) error {
	chart, err := RegressionChart(o, x, y)
	if err != nil {
		return err
	}

	return renderPage(w, o, chart)
}

func renderPage(w io.Writer, o Options, chart components.Charter) error {
	page := components.NewPage()
	page.PageTitle = o.Title
	page.AddCharts(chart)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return nil
}
