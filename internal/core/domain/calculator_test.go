package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculator_IsValid(t *testing.T) {
	for _, c := range AllCalculators() {
		assert.True(t, c.IsValid(), c.String())
	}
	assert.False(t, Calculator("").IsValid())
	assert.False(t, Calculator("bfp").IsValid())
}

func TestCalculator_Metadata(t *testing.T) {
	tests := []struct {
		calc   Calculator
		label  string
		unit   string
		fields []string
	}{
		{CalculatorBMI, "BMI", "kg/m²", []string{FieldWeight, FieldHeight}},
		{CalculatorBMR, "BMR", "kcal/day", []string{FieldGender, FieldAge, FieldWeight, FieldHeight}},
		{CalculatorBSA, "BSA", "m²", []string{FieldWeight, FieldHeight}},
	}

	for _, tt := range tests {
		t.Run(tt.calc.String(), func(t *testing.T) {
			assert.Equal(t, tt.label, tt.calc.Label())
			assert.Equal(t, tt.unit, tt.calc.Unit())
			assert.Equal(t, tt.fields, tt.calc.Fields())
			assert.NotEmpty(t, tt.calc.Title())
			assert.NotEmpty(t, tt.calc.Formula())
		})
	}
}

func TestCalculator_Unknown(t *testing.T) {
	c := Calculator("nope")

	assert.Equal(t, "Unknown", c.Title())
	assert.Equal(t, "Unknown", c.Label())
	assert.Empty(t, c.Unit())
	assert.Empty(t, c.Formula())
	assert.Nil(t, c.Fields())
}

func TestParseCalculator(t *testing.T) {
	c, err := ParseCalculator(" BMR ")
	require.NoError(t, err)
	assert.Equal(t, CalculatorBMR, c)

	_, err = ParseCalculator("tdee")
	assert.ErrorIs(t, err, ErrUnknownCalculator)
}

func TestFieldRange(t *testing.T) {
	r, ok := FieldRange(FieldAge)
	require.True(t, ok)
	assert.Equal(t, AgeRange, r)

	_, ok = FieldRange(FieldGender)
	assert.False(t, ok)
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, CalculatorBMI, s.Display.DefaultCalculator)
	assert.Equal(t, OutputText, s.Display.Output)
	assert.False(t, s.Metrics.Enabled())
}

func TestOutputFormat(t *testing.T) {
	assert.True(t, OutputText.IsValid())
	assert.True(t, OutputJSON.IsValid())
	assert.False(t, OutputFormat("yaml").IsValid())
	assert.Equal(t, "Unknown", OutputFormat("yaml").Description())
	assert.Len(t, AllOutputFormats(), 2)
}

func TestResult_Summary(t *testing.T) {
	bmi := BMIResult{BMI: 22.9, Category: BMINormal}.Result()
	assert.Equal(t, "BMI: 22.9 (Normal weight)", bmi.Summary())
	assert.Equal(t, "kg/m²", bmi.Unit)

	bmr := BMRResult{BMR: 1649}.Result()
	assert.Equal(t, "BMR: 1649 kcal/day", bmr.Summary())
	assert.Empty(t, bmr.Category)

	bsa := BSAResult{BSA: 1.84}.Result()
	assert.Equal(t, "BSA: 1.84 m²", bsa.Summary())
	assert.Equal(t, "1.84", bsa.FormattedValue())
}
