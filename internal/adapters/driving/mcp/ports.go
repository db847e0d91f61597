package mcp

import (
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
type Ports struct {
	// Calculator computes the medical calculators.
	Calculator driving.CalculatorService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	return nil
}
