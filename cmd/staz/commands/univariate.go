package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staz/pkg/stats"
)

// statisticFunc computes one statistic of a sample.
type statisticFunc func(sample []float64) (float64, error)

func newDescribeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [file]",
		Short: "Compute every univariate statistic",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.load(cmd, args, app.input)
			if err != nil {
				return err
			}

			return app.emit(cmd, app.engine.Describe(cmd.Context(), ds.X))
		},
	}
}

// newSingleCommand builds a subcommand computing the statistic returned by
// resolve, which runs after flags are parsed.
func newSingleCommand(app *App, use, short string, resolve func() (string, statisticFunc, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, fn, err := resolve()
			if err != nil {
				return err
			}

			ds, err := app.load(cmd, args, app.input)
			if err != nil {
				return err
			}

			s := app.engine.Single(cmd.Context(), name, len(ds.X), func() (float64, error) {
				return fn(ds.X)
			})

			return app.emitSingle(cmd, s)
		},
	}
}

func fixed(name string, fn statisticFunc) func() (string, statisticFunc, error) {
	return func() (string, statisticFunc, error) { return name, fn, nil }
}

func kindNames[K fmt.Stringer](kinds []K) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}

	return strings.Join(names, ", ")
}

func newMeanCommand(app *App) *cobra.Command {
	var kind string

	cmd := newSingleCommand(app, "mean", "Compute a mean", func() (string, statisticFunc, error) {
		k, err := stats.ParseMeanKind(kind)
		if err != nil {
			return "", nil, fmt.Errorf("--kind %q: %w (valid: %s)", kind, err, kindNames(stats.MeanKinds()))
		}

		return "mean." + k.String(), func(s []float64) (float64, error) { return stats.Mean(k, s) }, nil
	})
	cmd.Flags().StringVarP(&kind, "kind", "k", stats.MeanArithmetic.String(),
		"Mean kind: "+kindNames(stats.MeanKinds()))

	return cmd
}

func newDeviationCommand(app *App) *cobra.Command {
	var kind string

	cmd := newSingleCommand(app, "deviation", "Compute a deviation", func() (string, statisticFunc, error) {
		k, err := stats.ParseDeviationKind(kind)
		if err != nil {
			return "", nil, fmt.Errorf("--kind %q: %w (valid: %s)", kind, err, kindNames(stats.DeviationKinds()))
		}

		return "deviation." + k.String(), func(s []float64) (float64, error) { return stats.Deviation(k, s) }, nil
	})
	cmd.Flags().StringVarP(&kind, "kind", "k", stats.DeviationStandard.String(),
		"Deviation kind: "+kindNames(stats.DeviationKinds()))

	return cmd
}

func newRangeCommand(app *App) *cobra.Command {
	var kind string

	cmd := newSingleCommand(app, "range", "Compute a range", func() (string, statisticFunc, error) {
		k, err := stats.ParseRangeKind(kind)
		if err != nil {
			return "", nil, fmt.Errorf("--kind %q: %w (valid: %s)", kind, err, kindNames(stats.RangeKinds()))
		}

		return "range." + k.String(), func(s []float64) (float64, error) { return stats.Range(k, s) }, nil
	})
	cmd.Flags().StringVarP(&kind, "kind", "k", stats.RangeStandard.String(),
		"Range kind: "+kindNames(stats.RangeKinds()))

	return cmd
}

func newVarianceCommand(app *App) *cobra.Command {
	return newSingleCommand(app, "variance", "Compute the population variance", fixed("variance", stats.Variance))
}

func newMedianCommand(app *App) *cobra.Command {
	return newSingleCommand(app, "median", "Compute the median", fixed("median", stats.Median))
}

func newModeCommand(app *App) *cobra.Command {
	return newSingleCommand(app, "mode", "Compute the most frequent value", fixed("mode", stats.Mode))
}

func newQuantileCommand(app *App) *cobra.Command {
	var divisions, position int

	cmd := newSingleCommand(app, "quantile", "Compute the P-th of D quantiles", func() (string, statisticFunc, error) {
		name := fmt.Sprintf("quantile.%d.%d", divisions, position)

		return name, func(s []float64) (float64, error) { return stats.Quantile(divisions, position, s) }, nil
	})
	cmd.Flags().IntVarP(&divisions, "divisions", "d", stats.Quartiles, "number of equal parts (4 quartiles, 10 deciles, 100 percentiles)")
	cmd.Flags().IntVarP(&position, "position", "p", 1, "quantile position, 1 to divisions-1")

	return cmd
}

func newBoxplotCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "boxplot [file]",
		Short: "Compute the five-number summary and whisker fences",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := app.load(cmd, args, app.input)
			if err != nil {
				return err
			}

			return app.emitSingle(cmd, app.engine.Boxplot(cmd.Context(), ds.X))
		},
	}
}
