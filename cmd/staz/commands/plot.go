package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staz/pkg/plot"
)

type plotOptions struct {
	output string
	title  string
	theme  string
}

func newPlotCommand(app *App) *cobra.Command {
	po := &plotOptions{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render samples as an HTML chart",
	}

	cmd.PersistentFlags().StringVarP(&po.output, "output", "o", "", "HTML output path (default stdout)")
	cmd.PersistentFlags().StringVar(&po.title, "title", "", "chart title")
	cmd.PersistentFlags().StringVar(&po.theme, "theme", string(plot.ThemeLight), "chart theme: light, dark")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "box [file]",
			Short: "Box plot of one sample, or of x and y for paired input",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := app.load(cmd, args, app.input)
				if err != nil {
					return err
				}

				series := []plot.Series{{Name: "x", Values: ds.X}}
				if ds.Paired() {
					series = append(series, plot.Series{Name: "y", Values: ds.Y})
				}

				return po.write(app, cmd, "box plot", func(w io.Writer, o plot.Options) error {
					return plot.Boxes(w, o, series...)
				})
			},
		},
		&cobra.Command{
			Use:   "regression [file]",
			Short: "Scatter of paired samples with the least-squares line",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ds, err := app.loadPaired(cmd, args)
				if err != nil {
					return err
				}

				return po.write(app, cmd, "regression", func(w io.Writer, o plot.Options) error {
					return plot.Regression(w, o, ds.X, ds.Y)
				})
			},
		},
	)

	return cmd
}

func (po *plotOptions) write(app *App, cmd *cobra.Command, defaultTitle string, draw func(io.Writer, plot.Options) error) error {
	o := plot.Options{Title: po.title, Theme: plot.Theme(po.theme)}
	if o.Title == "" {
		o.Title = defaultTitle
	}

	if po.output == "" {
		return draw(cmd.OutOrStdout(), o)
	}

	file, err := os.Create(po.output)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}

	drawErr := draw(file, o)
	closeErr := file.Close()

	if drawErr != nil {
		return drawErr
	}

	if closeErr != nil {
		return fmt.Errorf("close plot: %w", closeErr)
	}

	app.logger.InfoContext(cmd.Context(), "plot written", slog.String("path", po.output))

	return nil
}
