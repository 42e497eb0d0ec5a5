package sample

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const defaultDelimiter = ','

func decodeCSV(data []byte, opts Options) (Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = opts.Delimiter
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if reader.Comma == 0 {
		reader.Comma = defaultDelimiter
	}

	records, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("decode csv: %w", err)
	}

	if len(records) == 0 {
		return Dataset{}, ErrNoValues
	}

	header, rows := splitHeader(records)

	xIdx, err := columnIndex(header, opts.XColumn, 0)
	if err != nil {
		return Dataset{}, err
	}

	yIdx, err := columnIndex(header, opts.YColumn, -1)
	if err != nil {
		return Dataset{}, err
	}

	var ds Dataset
	if yIdx >= 0 {
		ds.Y = make([]float64, 0, len(rows))
	}

	for i, row := range rows {
		rowErr := appendRow(&ds, row, xIdx, yIdx)
		if rowErr != nil {
			return Dataset{}, fmt.Errorf("csv row %d: %w", i+1, rowErr)
		}
	}

	return ds, nil
}

// splitHeader treats the first record as a header when any of its non-empty
// fields fails to parse as a number. Blank cells never make a header.
func splitHeader(records [][]string) (header []string, rows [][]string) {
	for _, field := range records[0] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		_, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return records[0], records[1:]
		}
	}

	return nil, records
}

func columnIndex(header []string, column string, fallback int) (int, error) {
	if column == "" {
		return fallback, nil
	}

	if idx := slices.IndexFunc(header, func(name string) bool {
		return strings.EqualFold(strings.TrimSpace(name), column)
	}); idx >= 0 {
		return idx, nil
	}

	idx, err := strconv.Atoi(column)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrColumn, column)
	}

	return idx, nil
}
