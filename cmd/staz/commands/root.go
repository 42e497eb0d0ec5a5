// Package commands implements CLI command handlers for staz.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Sumatoshi-tech/staz/pkg/config"
	"github.com/Sumatoshi-tech/staz/pkg/observability"
	"github.com/Sumatoshi-tech/staz/pkg/report"
	"github.com/Sumatoshi-tech/staz/pkg/sample"
	"github.com/Sumatoshi-tech/staz/pkg/stats"
	"github.com/Sumatoshi-tech/staz/pkg/version"
)

// ErrStatisticFailed is returned when the requested statistic could not be
// computed. The diagnostic line is written to stderr before it is returned.
var ErrStatisticFailed = errors.New("statistic failed")

const shutdownTimeout = 5 * time.Second

// ReportError writes err to w as the final "Error:" line. Statistic failures
// already printed their diagnostic while running and are not repeated.
func ReportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrStatisticFailed) {
		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath  string
	format      string
	precision   int
	noColor     bool
	verbose     bool
	quiet       bool
	inputFormat string
	column      string
	yColumn     string
	delimiter   string
}

// App holds the state resolved before a subcommand runs.
type App struct {
	opts      globalOptions
	cfg       *config.Config
	render    report.Options
	input     sample.Options
	providers *observability.Providers
	engine    *report.Engine
	logger    *slog.Logger
}

// Execute runs the staz command line with args and flushes telemetry before
// returning.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	app := &App{}

	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, app.shutdown(ctx))
}

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "staz",
		Short: "staz - descriptive statistics for numeric samples",
		Long: `staz computes summary statistics over samples read from files or stdin.

Input is plain text, CSV or JSON, optionally LZ4-compressed (.lz4).
Results render as a table, plain text, JSON or YAML.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&app.opts.configPath, "config", "", "config file (default .staz.yaml in . or $HOME)")
	pf.StringVarP(&app.opts.format, "format", "f", config.DefaultOutputFormat, "Output format: table, text, json, yaml")
	pf.IntVar(&app.opts.precision, "precision", config.DefaultOutputPrecision, "decimals in table and text output")
	pf.BoolVar(&app.opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&app.opts.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVarP(&app.opts.quiet, "quiet", "q", false, "log errors only")
	pf.StringVar(&app.opts.inputFormat, "input-format", config.DefaultInputFormat, "Input format: auto, text, csv, json")
	pf.StringVarP(&app.opts.column, "column", "c", "", "sample column, by CSV header name or zero-based index")
	pf.StringVar(&app.opts.yColumn, "y-column", "", "second column for paired statistics")
	pf.StringVar(&app.opts.delimiter, "delimiter", config.DefaultInputDelimiter, "CSV field delimiter")

	root.AddCommand(
		newDescribeCommand(app),
		newMeanCommand(app),
		newDeviationCommand(app),
		newRangeCommand(app),
		newVarianceCommand(app),
		newMedianCommand(app),
		newModeCommand(app),
		newQuantileCommand(app),
		newBoxplotCommand(app),
		newCovarianceCommand(app),
		newCorrelationCommand(app),
		newRegressionCommand(app),
		newRelateCommand(app),
		newPlotCommand(app),
		newVersionCommand(),
	)

	return root
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.opts.configPath)
	if err != nil {
		return err
	}

	a.applyFlags(cmd.Flags(), cfg)

	err = cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a.cfg = cfg

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	a.render = report.Options{
		Format:    format,
		Precision: cfg.Output.Precision,
		Color:     cfg.Output.Color,
	}

	inputFormat, err := sample.ParseFormat(cfg.Input.Format)
	if err != nil {
		return err
	}

	a.input = sample.Options{
		Format:    inputFormat,
		Delimiter: cfg.Input.DelimiterRune(),
		XColumn:   cfg.Input.Column,
		YColumn:   cfg.Input.YColumn,
	}

	return a.initTelemetry(cmd.ErrOrStderr())
}

// applyFlags lets explicitly set flags override file and env settings.
func (a *App) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}

	if flags.Changed("precision") {
		cfg.Output.Precision = a.opts.precision
	}

	if a.opts.noColor {
		cfg.Output.Color = false
	}

	if flags.Changed("input-format") {
		cfg.Input.Format = a.opts.inputFormat
	}

	if flags.Changed("column") {
		cfg.Input.Column = a.opts.column
	}

	if flags.Changed("y-column") {
		cfg.Input.YColumn = a.opts.yColumn
	}

	if flags.Changed("delimiter") {
		cfg.Input.Delimiter = a.opts.delimiter
	}

	switch {
	case a.opts.verbose:
		cfg.Logging.Level = slog.LevelDebug.String()
	case a.opts.quiet:
		cfg.Logging.Level = slog.LevelError.String()
	}
}

func (a *App) initTelemetry(logOutput io.Writer) error {
	level, err := a.cfg.Logging.SlogLevel()
	if err != nil {
		return err
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.Environment = a.cfg.Telemetry.Environment
	obsCfg.OTLPEndpoint = a.cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(a.cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = a.cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = a.cfg.Telemetry.SampleRatio
	obsCfg.MetricsTextfile = a.cfg.Telemetry.MetricsTextfile
	obsCfg.DebugTrace = a.opts.verbose
	obsCfg.LogLevel = level
	obsCfg.LogJSON = a.cfg.Logging.JSON
	obsCfg.LogOutput = logOutput

	providers, err := observability.Init(obsCfg)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}

	a.providers = &providers
	a.logger = providers.Logger

	metrics, err := observability.NewComputeMetrics(providers.Meter)
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	a.engine = report.NewEngine(providers.Tracer, metrics, providers.Logger)

	return nil
}

func (a *App) shutdown(ctx context.Context) error {
	if a.providers == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	err := a.providers.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("shutdown telemetry: %w", err)
	}

	return nil
}

// load reads the sample named by args, or stdin when args is empty or "-".
func (a *App) load(cmd *cobra.Command, args []string, opts sample.Options) (sample.Dataset, error) {
	path := sample.StdinPath
	if len(args) > 0 {
		path = args[0]
	}

	var (
		ds  sample.Dataset
		err error
	)

	if path == sample.StdinPath {
		ds, err = sample.Read(cmd.InOrStdin(), opts)
	} else {
		ds, err = sample.Load(path, opts)
	}

	if err != nil {
		return sample.Dataset{}, fmt.Errorf("load %s: %w", path, err)
	}

	a.logger.DebugContext(cmd.Context(), "sample loaded",
		slog.String("path", path),
		slog.Int("values", len(ds.X)),
		slog.Bool("paired", ds.Paired()),
	)

	return ds, nil
}

// emit renders s to stdout.
func (a *App) emit(cmd *cobra.Command, s report.Summary) error {
	return report.Render(cmd.OutOrStdout(), s, a.render)
}

// emitSingle renders a one-statistic summary and fails when the statistic
// could not be computed.
func (a *App) emitSingle(cmd *cobra.Command, s report.Summary) error {
	err := a.emit(cmd, s)
	if err != nil {
		return err
	}

	var status stats.Status

	for _, v := range s.Values {
		if !v.OK() {
			status.Set(v.Err())
		}
	}

	if status.Code() != stats.CodeOK {
		status.Report(cmd.ErrOrStderr(), "staz")

		return fmt.Errorf("%w: %w", ErrStatisticFailed, status.Err())
	}

	return nil
}
