package domain

import "strings"

// Calculator identifies one of the medical calculators.
type Calculator string

// Available calculators.
const (
	// CalculatorBMI computes body mass index.
	CalculatorBMI Calculator = "bmi"

	// CalculatorBMR computes basal metabolic rate.
	CalculatorBMR Calculator = "bmr"

	// CalculatorBSA computes body surface area.
	CalculatorBSA Calculator = "bsa"
)

// IsValid returns true if the calculator is recognised.
func (c Calculator) IsValid() bool {
	switch c {
	case CalculatorBMI, CalculatorBMR, CalculatorBSA:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Calculator) String() string {
	return string(c)
}

// Title returns the full calculator name.
func (c Calculator) Title() string {
	switch c {
	case CalculatorBMI:
		return "Body Mass Index (BMI)"
	case CalculatorBMR:
		return "Basal Metabolic Rate (BMR)"
	case CalculatorBSA:
		return "Body Surface Area (BSA)"
	default:
		return unknownDescription
	}
}

// Label returns the short tab label.
func (c Calculator) Label() string {
	if !c.IsValid() {
		return unknownDescription
	}
	return strings.ToUpper(string(c))
}

// Unit returns the unit of the calculator's result.
func (c Calculator) Unit() string {
	switch c {
	case CalculatorBMI:
		return "kg/m²"
	case CalculatorBMR:
		return "kcal/day"
	case CalculatorBSA:
		return "m²"
	default:
		return ""
	}
}

// Formula returns the formula in plain text.
func (c Calculator) Formula() string {
	switch c {
	case CalculatorBMI:
		return "weight_kg / (height_cm/100)^2, rounded to 1 decimal"
	case CalculatorBMR:
		return "Mifflin-St Jeor: 10*weight_kg + 6.25*height_cm - 5*age_years + 5 (male) or - 161 (female), rounded to integer"
	case CalculatorBSA:
		return "Mosteller: sqrt(height_cm * weight_kg / 3600), rounded to 2 decimals"
	default:
		return ""
	}
}

// Fields returns the input fields the calculator reads, in form order.
func (c Calculator) Fields() []string {
	switch c {
	case CalculatorBMR:
		return []string{FieldGender, FieldAge, FieldWeight, FieldHeight}
	case CalculatorBMI, CalculatorBSA:
		return []string{FieldWeight, FieldHeight}
	default:
		return nil
	}
}

// ParseCalculator parses a calculator name ignoring case and surrounding whitespace.
func ParseCalculator(s string) (Calculator, error) {
	c := Calculator(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrUnknownCalculator
	}
	return c, nil
}

// AllCalculators returns the calculators in tab order.
func AllCalculators() []Calculator {
	return []Calculator{CalculatorBMI, CalculatorBMR, CalculatorBSA}
}

// FieldRange returns the accepted range for a numeric field.
func FieldRange(field string) (Range, bool) {
	switch field {
	case FieldWeight:
		return WeightRange, true
	case FieldHeight:
		return HeightRange, true
	case FieldAge:
		return AgeRange, true
	default:
		return Range{}, false
	}
}
