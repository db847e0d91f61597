// Package tui provides an interactive terminal user interface for medcalc.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
)

// Ports aggregates the services the TUI uses.
// Only Calculator is required.
type Ports struct {
	// Calculator runs the BMI, BMR and BSA formulas.
	Calculator driving.CalculatorService

	// Settings provides the default tab and backs the settings view.
	Settings driving.SettingsService

	// Config is watched so that edits to the config file reach the
	// settings view while the TUI runs.
	Config driven.ConfigStore
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
