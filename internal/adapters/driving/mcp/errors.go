// Package mcp provides an MCP (Model Context Protocol) server adapter for medcalc.
// It lets AI assistants call the BMI, BMR and BSA calculators over stdio.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")
