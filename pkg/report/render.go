package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format selects a renderer.
type Format string

// Output formats.
const (
	FormatTable Format = "table"
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for an output format outside the set above.
var ErrUnknownFormat = errors.New("report: unknown output format")

const yamlIndent = 2

// ParseFormat validates a format name coming from flags or config.
// Empty selects the table renderer.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	// Precision is the number of decimals in human-readable formats.
	Precision int
	// Color enables ANSI colors in table and text output.
	Color bool
}

// Render writes s to w in the requested format.
func Render(w io.Writer, s Summary, opts Options) error {
	var err error

	switch opts.Format {
	case FormatTable, "":
		err = renderTable(w, s, opts)
	case FormatText:
		err = renderText(w, s, opts)
	case FormatJSON:
		err = renderJSON(w, s)
	case FormatYAML:
		err = renderYAML(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}

	if err != nil {
		return fmt.Errorf("render %s: %w", opts.Format, err)
	}

	return nil
}

type palette struct {
	title *color.Color
	name  *color.Color
	fail  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title: color.New(color.FgCyan, color.Bold),
		name:  color.New(color.FgBlue),
		fail:  color.New(color.FgRed),
	}

	if !enabled {
		p.title.DisableColor()
		p.name.DisableColor()
		p.fail.DisableColor()
	}

	return p
}

// formatNumber prints v rounded to precision decimals with thousands
// separators. Trailing zeros are dropped.
func formatNumber(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	// CommafWithDigits truncates, so round through the decimal form first.
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', precision, 64), 64)
	if err == nil {
		v = rounded
	}

	return humanize.CommafWithDigits(v, precision)
}

func cell(v Value, opts Options, p palette) string {
	if !v.OK() {
		return p.fail.Sprintf("error: %s", v.Code.Message())
	}

	return formatNumber(v.Value, opts.Precision)
}

func heading(s Summary) string {
	return fmt.Sprintf("%s (n = %s)", s.Title, humanize.Comma(int64(s.Count)))
}

func renderTable(w io.Writer, s Summary, opts Options) error {
	p := newPalette(opts.Color)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(p.title.Sprint(heading(s)))
	tbl.AppendHeader(table.Row{"Statistic", "Value"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, v := range s.Values {
		tbl.AppendRow(table.Row{v.Name, cell(v, opts, p)})
	}

	if failed := len(s.Failed()); failed > 0 {
		tbl.AppendFooter(table.Row{"Failed", strconv.Itoa(failed)})
	}

	_, err := fmt.Fprintln(w, tbl.Render())

	return err
}

func renderText(w io.Writer, s Summary, opts Options) error {
	p := newPalette(opts.Color)

	width := 0
	for _, v := range s.Values {
		width = max(width, len(v.Name))
	}

	var sb strings.Builder

	sb.WriteString(p.title.Sprint(heading(s)))
	sb.WriteByte('\n')

	for _, v := range s.Values {
		pad := strings.Repeat(" ", width-len(v.Name))
		fmt.Fprintf(&sb, "  %s%s  %s\n", p.name.Sprint(v.Name), pad, cell(v, opts, p))
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func renderJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}

func renderYAML(w io.Writer, s Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)

	err := enc.Encode(s)
	if err != nil {
		return err
	}

	return enc.Close()
}
