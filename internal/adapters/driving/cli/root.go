// Package cli provides the cobra commands of the medcalc binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
	"github.com/custodia-labs/medcalc/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Services holds what the commands drive. Config and Metrics are optional.
type Services struct {
	Calculator driving.CalculatorService
	Settings   driving.SettingsService
	Config     driven.ConfigStore
	Metrics    driven.MetricsExporter
}

// ServicesFactory builds the services once global flags are parsed.
// configDir is the --config-dir flag value, empty when not given.
type ServicesFactory func(configDir string) (*Services, error)

var (
	calculatorService driving.CalculatorService
	settingsService   driving.SettingsService
	configStore       driven.ConfigStore
	metricsExporter   driven.MetricsExporter

	servicesFactory ServicesFactory
)

var (
	verbose   bool
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "medcalc",
	Short: "Medical calculators: BMI, BMR and BSA",
	Long: `medcalc computes body mass index, basal metabolic rate (Mifflin-St Jeor)
and body surface area (Mosteller) from weight, height, age and gender.

Use it one-off from the command line, over a YAML sheet of measurements,
interactively in the terminal UI, or as an MCP server for AI assistants.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: exportMetrics,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.medcalc)")
}

// SetServices installs the services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	calculatorService = s.Calculator
	settingsService = s.Settings
	configStore = s.Config
	metricsExporter = s.Metrics
}

// SetServicesFactory defers service construction until flags are parsed.
func SetServicesFactory(f ServicesFactory) {
	servicesFactory = f
}

// Execute runs the root command. Cancelling ctx stops long-running
// commands such as mcp serve and tui.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if servicesFactory == nil {
		return nil
	}
	s, err := servicesFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(s)
	return nil
}

// exportMetrics writes the Prometheus textfile after a command when one is
// configured in settings.
func exportMetrics(_ *cobra.Command, _ []string) error {
	if metricsExporter == nil || settingsService == nil {
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.Metrics.Enabled() {
		return nil
	}

	if err := metricsExporter.WriteTextfile(settings.Metrics.Textfile); err != nil {
		return err
	}
	logger.Debug("wrote metrics to %s", settings.Metrics.Textfile)
	return nil
}
