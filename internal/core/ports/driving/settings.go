package driving

import "github.com/custodia-labs/medcalc/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDefaultCalculator updates the tab the TUI opens on.
	SetDefaultCalculator(calc domain.Calculator) error

	// SetOutputFormat updates the default CLI output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetMetricsTextfile updates the Prometheus textfile path.
	// An empty path disables the export.
	SetMetricsTextfile(path string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
