package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for medcalc.

The TUI shows one tab per calculator with a form for its inputs. Results
and validation errors appear as soon as a form is submitted. Editing
config.toml while the TUI runs applies the new settings.

Controls:
  Tab/Shift+Tab - Next / previous calculator
  1, 2, 3       - Jump to BMI, BMR, BSA
  ↑/↓           - Move between fields
  Enter         - Next field / calculate on the last field
  m, f, ←/→     - Choose gender on the BMR tab
  Ctrl+S        - Calculate
  Ctrl+R        - Reset the form
  Esc           - Leave the form
  s             - Settings
  ?             - Help
  q, Ctrl+C     - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(&tui.Ports{
		Calculator: calculatorService,
		Settings:   settingsService,
		Config:     configStore,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
