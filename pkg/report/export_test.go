package report

// FormatNumber exposes formatNumber for testing.
func FormatNumber(v float64, precision int) string {
	return formatNumber(v, precision)
}
