package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".staz"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for staz settings.
const envPrefix = "STAZ"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// A non-empty configPath must exist. Otherwise .staz.yaml is searched in the
// working directory and $HOME, and a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or env var is present.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    DefaultOutputFormat,
			Precision: DefaultOutputPrecision,
			Color:     DefaultOutputColor,
		},
		Input: InputConfig{
			Format:    DefaultInputFormat,
			Column:    DefaultInputColumn,
			YColumn:   DefaultInputYColumn,
			Delimiter: DefaultInputDelimiter,
		},
		Logging: LoggingConfig{
			Level: DefaultLoggingLevel,
			JSON:  DefaultLoggingJSON,
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint:    DefaultTelemetryOTLPEndpoint,
			OTLPHeaders:     DefaultTelemetryOTLPHeaders,
			Environment:     DefaultTelemetryEnvironment,
			MetricsTextfile: DefaultTelemetryMetricsTextfile,
			SampleRatio:     DefaultTelemetrySampleRatio,
			OTLPInsecure:    DefaultTelemetryOTLPInsecure,
		},
	}
}

// applyDefaults seeds viperCfg from Default so both stay in step.
func applyDefaults(viperCfg *viper.Viper) {
	def := Default()

	viperCfg.SetDefault("output.format", def.Output.Format)
	viperCfg.SetDefault("output.precision", def.Output.Precision)
	viperCfg.SetDefault("output.color", def.Output.Color)

	viperCfg.SetDefault("input.format", def.Input.Format)
	viperCfg.SetDefault("input.column", def.Input.Column)
	viperCfg.SetDefault("input.y_column", def.Input.YColumn)
	viperCfg.SetDefault("input.delimiter", def.Input.Delimiter)

	viperCfg.SetDefault("logging.level", def.Logging.Level)
	viperCfg.SetDefault("logging.json", def.Logging.JSON)

	viperCfg.SetDefault("telemetry.otlp_endpoint", def.Telemetry.OTLPEndpoint)
	viperCfg.SetDefault("telemetry.otlp_insecure", def.Telemetry.OTLPInsecure)
	viperCfg.SetDefault("telemetry.otlp_headers", def.Telemetry.OTLPHeaders)
	viperCfg.SetDefault("telemetry.environment", def.Telemetry.Environment)
	viperCfg.SetDefault("telemetry.sample_ratio", def.Telemetry.SampleRatio)
	viperCfg.SetDefault("telemetry.metrics_textfile", def.Telemetry.MetricsTextfile)
}
