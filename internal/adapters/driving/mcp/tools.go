package mcp

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// BodyInput is the input schema for the BMI and BSA tools.
type BodyInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"body weight in kilograms, 20 to 500"`
	HeightCm float64 `json:"height_cm" jsonschema:"height in centimetres, 50 to 300"`
}

// MetabolicInput is the input schema for the BMR tool.
type MetabolicInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"body weight in kilograms, 20 to 500"`
	HeightCm float64 `json:"height_cm" jsonschema:"height in centimetres, 50 to 300"`
	AgeYears float64 `json:"age_years" jsonschema:"age in whole years, 1 to 120"`
	Gender   string  `json:"gender,omitempty" jsonschema:"male or female, defaults to male"`
}

// BMIOutput is the output schema for the calculate_bmi tool.
type BMIOutput struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Summary  string  `json:"summary"`
}

// BMROutput is the output schema for the calculate_bmr tool.
type BMROutput struct {
	BMR     float64 `json:"bmr"`
	Unit    string  `json:"unit"`
	Summary string  `json:"summary"`
}

// BSAOutput is the output schema for the calculate_bsa tool.
type BSAOutput struct {
	BSA     float64 `json:"bsa"`
	Unit    string  `json:"unit"`
	Summary string  `json:"summary"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolName(domain.CalculatorBMI),
		Description: "Calculate body mass index and its WHO weight category",
	}, s.handleBMI)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolName(domain.CalculatorBMR),
		Description: "Calculate basal metabolic rate in kcal/day with the Mifflin-St Jeor equation",
	}, s.handleBMR)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        toolName(domain.CalculatorBSA),
		Description: "Calculate body surface area in m² with the Mosteller formula",
	}, s.handleBSA)
}

func toolName(calc domain.Calculator) string {
	return "calculate_" + calc.String()
}

// handleBMI handles the calculate_bmi tool invocation.
// Returned errors are reported to the client as tool errors.
func (s *Server) handleBMI(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BodyInput,
) (*mcp.CallToolResult, BMIOutput, error) {
	callID := uuid.NewString()
	log.Debug("%s calculate_bmi weight=%v height=%v", callID, input.WeightKg, input.HeightCm)

	result, err := s.ports.Calculator.BMI(domain.Measurement{
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
	})
	if err != nil {
		log.Debug("%s rejected: %v", callID, err)
		return nil, BMIOutput{}, err
	}

	return nil, BMIOutput{
		BMI:      result.BMI,
		Category: result.Category.String(),
		Summary:  result.Result().Summary(),
	}, nil
}

// handleBMR handles the calculate_bmr tool invocation.
func (s *Server) handleBMR(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MetabolicInput,
) (*mcp.CallToolResult, BMROutput, error) {
	callID := uuid.NewString()
	log.Debug("%s calculate_bmr weight=%v height=%v age=%v gender=%q",
		callID, input.WeightKg, input.HeightCm, input.AgeYears, input.Gender)

	result, err := s.ports.Calculator.BMR(domain.Measurement{
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
		AgeYears: input.AgeYears,
		Gender:   normalizeGender(input.Gender),
	})
	if err != nil {
		log.Debug("%s rejected: %v", callID, err)
		return nil, BMROutput{}, err
	}

	return nil, BMROutput{
		BMR:     result.BMR,
		Unit:    domain.CalculatorBMR.Unit(),
		Summary: result.Result().Summary(),
	}, nil
}

// handleBSA handles the calculate_bsa tool invocation.
func (s *Server) handleBSA(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input BodyInput,
) (*mcp.CallToolResult, BSAOutput, error) {
	callID := uuid.NewString()
	log.Debug("%s calculate_bsa weight=%v height=%v", callID, input.WeightKg, input.HeightCm)

	result, err := s.ports.Calculator.BSA(domain.Measurement{
		WeightKg: input.WeightKg,
		HeightCm: input.HeightCm,
	})
	if err != nil {
		log.Debug("%s rejected: %v", callID, err)
		return nil, BSAOutput{}, err
	}

	return nil, BSAOutput{
		BSA:     result.BSA,
		Unit:    domain.CalculatorBSA.Unit(),
		Summary: result.Result().Summary(),
	}, nil
}

// normalizeGender lowercases and trims g, defaulting an empty value to male.
// Anything else is left for the calculator to reject.
func normalizeGender(g string) domain.Gender {
	g = strings.ToLower(strings.TrimSpace(g))
	if g == "" {
		return domain.GenderMale
	}
	return domain.Gender(g)
}
