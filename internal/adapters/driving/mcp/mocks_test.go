package mcp

import (
	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// mockCalculatorService is a mock implementation of driving.CalculatorService.
type mockCalculatorService struct {
	bmi   domain.BMIResult
	bmr   domain.BMRResult
	bsa   domain.BSAResult
	err   error
	calls []domain.Measurement
}

func (m *mockCalculatorService) BMI(in domain.Measurement) (domain.BMIResult, error) {
	m.calls = append(m.calls, in)
	return m.bmi, m.err
}

func (m *mockCalculatorService) BMR(in domain.Measurement) (domain.BMRResult, error) {
	m.calls = append(m.calls, in)
	return m.bmr, m.err
}

func (m *mockCalculatorService) BSA(in domain.Measurement) (domain.BSAResult, error) {
	m.calls = append(m.calls, in)
	return m.bsa, m.err
}

func (m *mockCalculatorService) Calculate(_ domain.Calculator, in domain.Measurement) (domain.Result, error) {
	m.calls = append(m.calls, in)
	return domain.Result{}, m.err
}
