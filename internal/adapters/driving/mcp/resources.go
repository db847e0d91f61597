package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

const (
	uriScheme      = "medcalc://"
	calculatorsURI = uriScheme + "calculators"
)

// calculatorInfo describes one calculator for resource readers.
type calculatorInfo struct {
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Tool    string      `json:"tool"`
	Unit    string      `json:"unit"`
	Formula string      `json:"formula"`
	Inputs  []inputInfo `json:"inputs"`
}

type inputInfo struct {
	Name   string   `json:"name"`
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Values []string `json:"values,omitempty"`
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         calculatorsURI,
		Name:        "calculators",
		Description: "Available calculators with their formulas and input ranges",
		MIMEType:    "application/json",
	}, s.handleCalculatorsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: calculatorsURI + "/{name}",
		Name:        "calculator",
		Description: "Formula and input ranges of a single calculator",
		MIMEType:    "application/json",
	}, s.handleCalculatorResource)
}

// handleCalculatorsResource returns every calculator.
func (s *Server) handleCalculatorsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	calcs := domain.AllCalculators()
	infos := make([]calculatorInfo, len(calcs))
	for i, calc := range calcs {
		infos[i] = describe(calc)
	}
	return jsonResource(req.Params.URI, infos)
}

// handleCalculatorResource returns a single calculator named in the URI.
func (s *Server) handleCalculatorResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractCalculatorName(req.Params.URI)
	calc, err := domain.ParseCalculator(name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, describe(calc))
}

func describe(calc domain.Calculator) calculatorInfo {
	fields := calc.Fields()
	inputs := make([]inputInfo, len(fields))
	for i, field := range fields {
		inputs[i] = inputInfo{Name: field}
		if r, ok := domain.FieldRange(field); ok {
			inputs[i].Min = &r.Min
			inputs[i].Max = &r.Max
			continue
		}
		for _, g := range domain.AllGenders() {
			inputs[i].Values = append(inputs[i].Values, g.String())
		}
	}

	return calculatorInfo{
		Name:    calc.String(),
		Title:   calc.Title(),
		Tool:    toolName(calc),
		Unit:    calc.Unit(),
		Formula: calc.Formula(),
		Inputs:  inputs,
	}
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractCalculatorName extracts the name from a URI like medcalc://calculators/{name}.
func extractCalculatorName(uri string) string {
	const prefix = calculatorsURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
