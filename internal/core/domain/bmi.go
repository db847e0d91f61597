package domain

// BMICategory is the weight-status label for a body mass index.
type BMICategory string

// BMI categories in ascending order.
const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// Lower bounds of the BMI categories above Underweight.
const (
	bmiNormalFrom     = 18.5
	bmiOverweightFrom = 25.0
	bmiObeseFrom      = 30.0
)

// String returns the string representation.
func (c BMICategory) String() string {
	return string(c)
}

// AllBMICategories returns the categories in ascending order.
func AllBMICategories() []BMICategory {
	return []BMICategory{BMIUnderweight, BMINormal, BMIOverweight, BMIObese}
}

// CategorizeBMI maps a BMI value to its category. Lower bounds are inclusive.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < bmiNormalFrom:
		return BMIUnderweight
	case bmi < bmiOverweightFrom:
		return BMINormal
	case bmi < bmiObeseFrom:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMIResult is the outcome of the BMI calculator.
type BMIResult struct {
	BMI      float64     `json:"bmi"`
	Category BMICategory `json:"category"`
}

// ComputeBMI returns the Quetelet index weight/height² (height in metres),
// rounded to one decimal, and its category. The category is taken from the
// unrounded index, so 18.46 shows as 18.5 but stays Underweight.
func ComputeBMI(weightKg, heightCm float64) (BMIResult, error) {
	m := Measurement{WeightKg: weightKg, HeightCm: heightCm}
	if err := m.ValidateBody(); err != nil {
		return BMIResult{}, err
	}

	heightM := heightCm / 100
	raw := weightKg / (heightM * heightM)

	return BMIResult{BMI: RoundHalfAway(raw, 1), Category: CategorizeBMI(raw)}, nil
}
