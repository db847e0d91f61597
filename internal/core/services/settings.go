package services

import (
	"fmt"

	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDefaultCalculator = "display.default_calculator"
	keyOutputFormat      = "display.output"
	keyMetricsTextfile   = "metrics.textfile"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unknown or missing values fall back to the defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Display: domain.DisplaySettings{
			DefaultCalculator: s.getCalculator(defaults.Display.DefaultCalculator),
			Output:            s.getOutputFormat(defaults.Display.Output),
		},
		Metrics: domain.MetricsSettings{
			Textfile: s.configStore.GetString(keyMetricsTextfile),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDefaultCalculator, settings.Display.DefaultCalculator.String()); err != nil {
		return fmt.Errorf("save default calculator: %w", err)
	}
	if err := s.configStore.Set(keyOutputFormat, settings.Display.Output.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyMetricsTextfile, settings.Metrics.Textfile); err != nil {
		return fmt.Errorf("save metrics textfile: %w", err)
	}
	return nil
}

// SetDefaultCalculator updates the tab the TUI opens on.
func (s *SettingsService) SetDefaultCalculator(calc domain.Calculator) error {
	if !calc.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCalculator, calc)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.DefaultCalculator = calc
	return s.Save(settings)
}

// SetOutputFormat updates the default CLI output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid output format: %s", format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Display.Output = format
	return s.Save(settings)
}

// SetMetricsTextfile updates the Prometheus textfile path.
func (s *SettingsService) SetMetricsTextfile(path string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Metrics.Textfile = path
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getCalculator(fallback domain.Calculator) domain.Calculator {
	calc := domain.Calculator(s.configStore.GetString(keyDefaultCalculator))
	if !calc.IsValid() {
		return fallback
	}
	return calc
}

func (s *SettingsService) getOutputFormat(fallback domain.OutputFormat) domain.OutputFormat {
	format := domain.OutputFormat(s.configStore.GetString(keyOutputFormat))
	if !format.IsValid() {
		return fallback
	}
	return format
}
