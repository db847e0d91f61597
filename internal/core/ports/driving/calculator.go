package driving

import "github.com/custodia-labs/medcalc/internal/core/domain"

// CalculatorService computes the medical calculators.
// Every method validates its input and returns a *domain.ValidationError
// (matching domain.ErrInvalidInput) when a value is out of range.
type CalculatorService interface {
	// BMI computes body mass index from weight and height.
	BMI(m domain.Measurement) (domain.BMIResult, error)

	// BMR computes basal metabolic rate from weight, height, age and gender.
	BMR(m domain.Measurement) (domain.BMRResult, error)

	// BSA computes body surface area from weight and height.
	BSA(m domain.Measurement) (domain.BSAResult, error)

	// Calculate dispatches to the named calculator and returns a uniform result.
	Calculate(calc domain.Calculator, m domain.Measurement) (domain.Result, error)
}
