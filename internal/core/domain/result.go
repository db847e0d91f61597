package domain

import (
	"fmt"
	"strconv"
)

// Result is the calculator-independent view of an outcome, used where the
// three calculators are handled uniformly (TUI tabs, batch reports).
type Result struct {
	Calculator Calculator  `json:"calculator"`
	Value      float64     `json:"value"`
	Unit       string      `json:"unit"`
	Category   BMICategory `json:"category,omitempty"`
}

// Result converts a BMI outcome.
func (r BMIResult) Result() Result {
	return Result{Calculator: CalculatorBMI, Value: r.BMI, Unit: CalculatorBMI.Unit(), Category: r.Category}
}

// Result converts a BMR outcome.
func (r BMRResult) Result() Result {
	return Result{Calculator: CalculatorBMR, Value: r.BMR, Unit: CalculatorBMR.Unit()}
}

// Result converts a BSA outcome.
func (r BSAResult) Result() Result {
	return Result{Calculator: CalculatorBSA, Value: r.BSA, Unit: CalculatorBSA.Unit()}
}

// FormattedValue prints the value with as many decimals as it carries.
func (r Result) FormattedValue() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Summary returns the one-line display form, e.g. "BMI: 22.9 (Normal weight)".
// BMI is shown without its unit, as it is conventionally quoted bare.
func (r Result) Summary() string {
	switch r.Calculator {
	case CalculatorBMI:
		return fmt.Sprintf("BMI: %s (%s)", r.FormattedValue(), r.Category)
	case CalculatorBMR, CalculatorBSA:
		return fmt.Sprintf("%s: %s %s", r.Calculator.Label(), r.FormattedValue(), r.Unit)
	default:
		return r.FormattedValue()
	}
}
