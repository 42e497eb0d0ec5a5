// Package sample loads numeric samples from text, CSV and JSON sources.
package sample

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Format identifies the encoding of a sample source.
type Format string

// Supported formats.
const (
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Sentinel errors.
var (
	ErrNoValues       = errors.New("sample: no values")
	ErrUnknownFormat  = errors.New("sample: unknown input format")
	ErrColumn         = errors.New("sample: column not found")
	ErrLengthMismatch = errors.New("sample: x and y differ in length")
	ErrSchema         = errors.New("sample: document does not match schema")
)

// Options controls how a source is decoded.
type Options struct {
	// Format of the source. Empty or FormatAuto sniffs the content.
	Format Format

	// Delimiter separates CSV fields. Zero means ','.
	Delimiter rune

	// XColumn selects the sample column of tabular input, by header name or
	// zero-based index. Empty reads every number in text input and column 0
	// in CSV input.
	XColumn string

	// YColumn selects the second column for paired data. Empty means unpaired.
	YColumn string
}

// Dataset is a decoded sample; Y is set only for paired data.
type Dataset struct {
	X []float64 `json:"x"           yaml:"x"`
	Y []float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Paired reports whether the dataset carries a second variable.
func (d Dataset) Paired() bool {
	return d.Y != nil
}

// ParseFormat validates a format name coming from flags or config.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText, FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Read decodes a whole source according to opts.
func Read(r io.Reader, opts Options) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("read sample: %w", err)
	}

	format := opts.Format
	if format == "" || format == FormatAuto {
		format = sniff(data)
	}

	var ds Dataset

	switch format {
	case FormatJSON:
		ds, err = decodeJSON(data)
	case FormatCSV:
		ds, err = decodeCSV(data, opts)
	case FormatText:
		ds, err = decodeText(data, opts)
	default:
		return Dataset{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return Dataset{}, err
	}

	if len(ds.X) == 0 {
		return Dataset{}, ErrNoValues
	}

	if ds.Y != nil && len(ds.X) != len(ds.Y) {
		return Dataset{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ds.X), len(ds.Y))
	}

	return ds, nil
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimLeftFunc(data, unicode.IsSpace)
	if len(trimmed) > 0 && (trimmed[0] == '[' || trimmed[0] == '{') {
		return FormatJSON
	}

	firstLine, _, _ := bytes.Cut(trimmed, []byte("\n"))
	if bytes.ContainsRune(firstLine, ',') {
		return FormatCSV
	}

	return FormatText
}

func parseValue(field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", field, err)
	}

	return v, nil
}

// decodeText reads whitespace separated numbers. Lines starting with '#' are
// comments. With XColumn set every line is a row and values are picked by
// index.
func decodeText(data []byte, opts Options) (Dataset, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), len(data)+1)

	columnar := opts.XColumn != "" || opts.YColumn != ""

	xIdx, yIdx := 0, -1

	if columnar {
		var err error

		xIdx, yIdx, err = textIndexes(opts)
		if err != nil {
			return Dataset{}, err
		}
	}

	var ds Dataset
	if yIdx >= 0 {
		ds.Y = []float64{}
	}

	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if !columnar {
			for _, field := range fields {
				v, err := parseValue(field)
				if err != nil {
					return Dataset{}, fmt.Errorf("line %d: %w", lineNo, err)
				}

				ds.X = append(ds.X, v)
			}

			continue
		}

		err := appendRow(&ds, fields, xIdx, yIdx)
		if err != nil {
			return Dataset{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}

	err := scanner.Err()
	if err != nil {
		return Dataset{}, fmt.Errorf("scan sample: %w", err)
	}

	return ds, nil
}

func textIndexes(opts Options) (xIdx, yIdx int, err error) {
	xIdx, yIdx = 0, -1

	if opts.XColumn != "" {
		xIdx, err = strconv.Atoi(opts.XColumn)
		if err != nil || xIdx < 0 {
			return 0, 0, fmt.Errorf("%w: text input needs a numeric index, got %q", ErrColumn, opts.XColumn)
		}
	}

	if opts.YColumn != "" {
		yIdx, err = strconv.Atoi(opts.YColumn)
		if err != nil || yIdx < 0 {
			return 0, 0, fmt.Errorf("%w: text input needs a numeric index, got %q", ErrColumn, opts.YColumn)
		}
	}

	return xIdx, yIdx, nil
}

func appendRow(ds *Dataset, fields []string, xIdx, yIdx int) error {
	if xIdx >= len(fields) || yIdx >= len(fields) {
		return fmt.Errorf("%w: row has %d fields", ErrColumn, len(fields))
	}

	x, err := parseValue(fields[xIdx])
	if err != nil {
		return err
	}

	ds.X = append(ds.X, x)

	if yIdx < 0 {
		return nil
	}

	y, err := parseValue(fields[yIdx])
	if err != nil {
		return err
	}

	ds.Y = append(ds.Y, y)

	return nil
}
