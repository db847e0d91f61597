package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the default calculator, output format and metrics export.

Settings are stored in config.toml inside the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsDefaultCmd = &cobra.Command{
	Use:   "default [bmi|bmr|bsa]",
	Short: "Set the calculator the TUI opens on",
	Long: `Set the calculator tab the TUI opens on.

Without an argument an interactive choice is offered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsDefault,
}

var settingsOutputCmd = &cobra.Command{
	Use:   "output [text|json]",
	Short: "Set the default output format",
	Long: `Set the output format used by the bmi, bmr, bsa and batch commands
when --json is not given.

Available formats:
  text - Human-readable lines
  json - Indented JSON`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsOutput,
}

var settingsMetricsCmd = &cobra.Command{
	Use:   "metrics <path|off>",
	Short: "Configure Prometheus textfile export",
	Long: `Write calculation metrics in the Prometheus textfile format to the given
path after every command. Point node_exporter's textfile collector at the
file's directory to scrape it. Use "off" to disable.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMetrics,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsDefaultCmd)
	settingsCmd.AddCommand(settingsOutputCmd)
	settingsCmd.AddCommand(settingsMetricsCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Display]")
	cmd.Printf("  Default calculator: %s\n", settings.Display.DefaultCalculator.Title())
	cmd.Printf("  Output: %s\n", settings.Display.Output.Description())
	cmd.Println()

	cmd.Println("[Metrics]")
	if settings.Metrics.Enabled() {
		cmd.Printf("  Textfile: %s\n", settings.Metrics.Textfile)
	} else {
		cmd.Println("  Textfile: (disabled)")
	}

	if configStore != nil {
		cmd.Println()
		cmd.Printf("Config file: %s\n", configStore.Path())
	}

	return nil
}

func runSettingsDefault(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var calc domain.Calculator
	if len(args) == 1 {
		parsed, err := domain.ParseCalculator(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", err, args[0])
		}
		calc = parsed
	} else {
		calcs := domain.AllCalculators()
		choices := make([]string, len(calcs))
		for i, c := range calcs {
			choices[i] = c.Title()
		}
		idx, err := choose(cmd, "Select Default Calculator", choices)
		if err != nil {
			return err
		}
		calc = calcs[idx]
	}

	if err := settingsService.SetDefaultCalculator(calc); err != nil {
		return fmt.Errorf("failed to set default calculator: %w", err)
	}

	cmd.Printf("Default calculator set to: %s\n", calc.Title())
	return nil
}

func runSettingsOutput(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var format domain.OutputFormat
	if len(args) == 1 {
		format = domain.OutputFormat(args[0])
		if !format.IsValid() {
			return fmt.Errorf("invalid output format: %s (expected text or json)", args[0])
		}
	} else {
		formats := domain.AllOutputFormats()
		choices := make([]string, len(formats))
		for i, f := range formats {
			choices[i] = f.Description()
		}
		idx, err := choose(cmd, "Select Output Format", choices)
		if err != nil {
			return err
		}
		format = formats[idx]
	}

	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}

	cmd.Printf("Output format set to: %s\n", format.Description())
	return nil
}

func runSettingsMetrics(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	path := args[0]
	if path == "off" {
		path = ""
	}

	if err := settingsService.SetMetricsTextfile(path); err != nil {
		return fmt.Errorf("failed to set metrics textfile: %w", err)
	}

	if path == "" {
		cmd.Println("Metrics export disabled.")
	} else {
		cmd.Printf("Metrics will be written to: %s\n", path)
	}
	return nil
}

// choose prints a numbered menu and returns the zero-based selection.
func choose(cmd *cobra.Command, title string, choices []string) (int, error) {
	if !isInteractive() {
		return 0, errors.New("no value given and stdin is not a terminal")
	}

	cmd.Println(title)
	for i, c := range choices {
		cmd.Printf("  %d. %s\n", i+1, c)
	}
	cmd.Print("\nEnter choice: ")

	reader := bufio.NewReader(cmd.InOrStdin())
	idx := parseChoice(readLine(reader), len(choices), 0)
	if idx == 0 {
		return 0, errors.New("invalid selection")
	}
	return idx - 1, nil
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
