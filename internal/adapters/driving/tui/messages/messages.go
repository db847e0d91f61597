// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewCalculators shows the calculator tabs.
	ViewCalculators ViewType = iota
	// ViewSettings is the settings configuration view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewCalculators:
		return "calculators"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// TabChanged is sent when another calculator tab is selected.
type TabChanged struct {
	Calculator domain.Calculator
}

// CalculationCompleted carries a calculator outcome back to its form.
// Generation identifies the submission; forms drop outcomes from
// submissions that a later submit or reset superseded.
type CalculationCompleted struct {
	Calculator domain.Calculator
	Generation uint64
	Result     domain.Result
	Err        error
}

// FormReset signals a form was cleared.
type FormReset struct {
	Calculator domain.Calculator
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ConfigChanged signals the config file changed on disk.
type ConfigChanged struct{}
