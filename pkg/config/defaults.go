// Package config loads staz settings from a YAML file, STAZ_* environment
// variables and built-in defaults.
package config

// Output defaults.
const (
	DefaultOutputFormat    = "table"
	DefaultOutputPrecision = 6
	DefaultOutputColor     = true
)

// Input defaults. An empty column selects the first column.
const (
	DefaultInputFormat    = "auto"
	DefaultInputColumn    = ""
	DefaultInputYColumn   = ""
	DefaultInputDelimiter = ","
)

// Logging defaults.
const (
	DefaultLoggingLevel = "warn"
	DefaultLoggingJSON  = false
)

// Telemetry defaults. An empty endpoint and textfile keep telemetry no-op.
const (
	DefaultTelemetryOTLPEndpoint    = ""
	DefaultTelemetryOTLPInsecure    = false
	DefaultTelemetryOTLPHeaders     = ""
	DefaultTelemetryEnvironment     = ""
	DefaultTelemetrySampleRatio     = 1.0
	DefaultTelemetryMetricsTextfile = ""
)

// MaxPrecision is the largest useful number of significant digits for a
// float64.
const MaxPrecision = 17
