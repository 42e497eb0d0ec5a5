package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staz/pkg/report"
	"github.com/Sumatoshi-tech/staz/pkg/sample"
	"github.com/Sumatoshi-tech/staz/pkg/stats"
)

// ErrNotPaired is returned when a bivariate statistic gets a single sample.
var ErrNotPaired = errors.New("input is not paired: give a JSON {x, y} document or select --column and --y-column")

// pairedOptions defaults tabular input to the first two columns.
func (a *App) pairedOptions() sample.Options {
	opts := a.input
	if opts.XColumn == "" {
		opts.XColumn = "0"
	}

	if opts.YColumn == "" {
		opts.YColumn = "1"
	}

	return opts
}

func (a *App) loadPaired(cmd *cobra.Command, args []string) (sample.Dataset, error) {
	ds, err := a.load(cmd, args, a.pairedOptions())
	if err != nil {
		return sample.Dataset{}, err
	}

	if !ds.Paired() {
		return sample.Dataset{}, ErrNotPaired
	}

	return ds, nil
}

type pairFunc func(x, y []float64) (float64, error)

func newPairCommand(app *App, use, short string, fn pairFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.loadPaired(cmd, args)
			if err != nil {
				return err
			}

			s := app.engine.Single(cmd.Context(), use, len(ds.X), func() (float64, error) {
				return fn(ds.X, ds.Y)
			})

			return app.emitSingle(cmd, s)
		},
	}
}

func newCovarianceCommand(app *App) *cobra.Command {
	return newPairCommand(app, "covariance", "Compute the population covariance of paired samples", stats.Covariance)
}

func newCorrelationCommand(app *App) *cobra.Command {
	return newPairCommand(app, "correlation", "Compute the Pearson correlation of paired samples", stats.Correlation)
}

func newPairSummaryCommand(
	app *App, use, short string,
	summarize func(e *report.Engine, cmd *cobra.Command, x, y []float64) report.Summary,
	strict bool,
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.loadPaired(cmd, args)
			if err != nil {
				return err
			}

			s := summarize(app.engine, cmd, ds.X, ds.Y)
			if strict {
				return app.emitSingle(cmd, s)
			}

			return app.emit(cmd, s)
		},
	}
}

func newRegressionCommand(app *App) *cobra.Command {
	return newPairSummaryCommand(app, "regression", "Fit a least-squares line y = slope·x + intercept",
		func(e *report.Engine, cmd *cobra.Command, x, y []float64) report.Summary {
			return e.Regression(cmd.Context(), x, y)
		}, true)
}

func newRelateCommand(app *App) *cobra.Command {
	return newPairSummaryCommand(app, "relate", "Compute covariance, correlation and the regression line",
		func(e *report.Engine, cmd *cobra.Command, x, y []float64) report.Summary {
			return e.Relate(cmd.Context(), x, y)
		}, false)
}
