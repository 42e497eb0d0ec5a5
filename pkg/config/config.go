package config

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/Sumatoshi-tech/staz/pkg/report"
	"github.com/Sumatoshi-tech/staz/pkg/sample"
)

// Sentinel validation errors.
var (
	ErrInvalidPrecision   = errors.New("output precision out of range")
	ErrInvalidDelimiter   = errors.New("input delimiter must be a single character")
	ErrInvalidLogLevel    = errors.New("invalid logging level")
	ErrInvalidSampleRatio = errors.New("telemetry sample ratio must be within [0, 1]")
)

// Config holds all staz settings.
type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Input     InputConfig     `mapstructure:"input"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	Color     bool   `mapstructure:"color"`
}

// InputConfig controls how samples are decoded.
type InputConfig struct {
	Format    string `mapstructure:"format"`
	Column    string `mapstructure:"column"`
	YColumn   string `mapstructure:"y_column"`
	Delimiter string `mapstructure:"delimiter"`
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// TelemetryConfig controls trace and metric export.
type TelemetryConfig struct {
	OTLPEndpoint    string  `mapstructure:"otlp_endpoint"`
	OTLPHeaders     string  `mapstructure:"otlp_headers"`
	Environment     string  `mapstructure:"environment"`
	MetricsTextfile string  `mapstructure:"metrics_textfile"`
	SampleRatio     float64 `mapstructure:"sample_ratio"`
	OTLPInsecure    bool    `mapstructure:"otlp_insecure"`
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	_, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return fmt.Errorf("output.format: %w", err)
	}

	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Output.Precision)
	}

	_, err = sample.ParseFormat(c.Input.Format)
	if err != nil {
		return fmt.Errorf("input.format: %w", err)
	}

	if utf8.RuneCountInString(c.Input.Delimiter) > 1 {
		return fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Input.Delimiter)
	}

	_, err = c.Logging.SlogLevel()
	if err != nil {
		return err
	}

	if c.Telemetry.SampleRatio < 0 || c.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRatio, c.Telemetry.SampleRatio)
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(l.Level))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}

	return level, nil
}

// DelimiterRune returns the CSV delimiter, or zero when unset.
func (i InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(i.Delimiter)
	if r == utf8.RuneError {
		return 0
	}

	return r
}
