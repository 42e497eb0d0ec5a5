package plot

// Theme selects the chart palette.
type Theme string

const (
	// ThemeLight renders dark text on a light page.
	ThemeLight Theme = "light"
	// ThemeDark renders light text on a dark page.
	ThemeDark Theme = "dark"
)

// ThemeConfig holds the colors applied to a chart.
type ThemeConfig struct {
	Background string
	Grid       string
	Axis       string
	Text       string
	TextMuted  string

	// Series colors.
	Box     string
	Points  string
	Fit     string
	Outlier string
}

// GetThemeConfig returns the configuration for theme; unknown themes fall
// back to light.
func GetThemeConfig(theme Theme) ThemeConfig {
	if theme == ThemeDark {
		return darkTheme
	}

	return lightTheme
}

var lightTheme = ThemeConfig{
	Background: "#ffffff",
	Grid:       "#e7e5e4", // stone-200.
	Axis:       "#a8a29e", // stone-400.
	Text:       "#44403c", // stone-700.
	TextMuted:  "#78716c", // stone-500.

	Box:     "#a16207", // amber-700.
	Points:  "#2563eb", // blue-600.
	Fit:     "#dc2626", // red-600.
	Outlier: "#ca8a04", // yellow-600.
}

var darkTheme = ThemeConfig{
	Background: "#1c1917", // stone-900.
	Grid:       "#44403c", // stone-700.
	Axis:       "#57534e", // stone-600.
	Text:       "#d6d3d1", // stone-300.
	TextMuted:  "#a8a29e", // stone-400.

	Box:     "#f59e0b", // amber-500.
	Points:  "#60a5fa", // blue-400.
	Fit:     "#f87171", // red-400.
	Outlier: "#facc15", // yellow-400.
}
