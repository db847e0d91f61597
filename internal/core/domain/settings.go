package domain

const unknownDescription = "Unknown"

// OutputFormat controls how the CLI prints results.
type OutputFormat string

// Available output formats.
const (
	// OutputText prints human-readable lines.
	OutputText OutputFormat = "text"

	// OutputJSON prints indented JSON.
	OutputJSON OutputFormat = "json"
)

// IsValid returns true if the output format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputText, OutputJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f OutputFormat) Description() string {
	switch f {
	case OutputText:
		return "Text (human readable)"
	case OutputJSON:
		return "JSON (machine readable)"
	default:
		return unknownDescription
	}
}

// AllOutputFormats returns all available output formats.
func AllOutputFormats() []OutputFormat {
	return []OutputFormat{OutputText, OutputJSON}
}

// DisplaySettings holds presentation preferences.
type DisplaySettings struct {
	// DefaultCalculator is the tab the TUI opens on.
	DefaultCalculator Calculator

	// Output is the CLI output format used when --json is not given.
	Output OutputFormat
}

// MetricsSettings holds metrics export configuration.
type MetricsSettings struct {
	// Textfile is where the Prometheus textfile is written when a
	// session ends. Empty disables the export.
	Textfile string
}

// Enabled returns true if a textfile path is configured.
func (m MetricsSettings) Enabled() bool {
	return m.Textfile != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	Display DisplaySettings
	Metrics MetricsSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The BMI tab comes first and metrics export is off.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Display: DisplaySettings{
			DefaultCalculator: CalculatorBMI,
			Output:            OutputText,
		},
	}
}
