package domain

// Mifflin-St Jeor constant terms.
const (
	bmrMaleOffset   = 5.0
	bmrFemaleOffset = -161.0
)

// BMRResult is the outcome of the BMR calculator, in kcal/day.
type BMRResult struct {
	BMR float64 `json:"bmr"`
}

// ComputeBMR applies the Mifflin-St Jeor equation
// 10*weight + 6.25*height - 5*age + s, with s = +5 for men and -161 for women,
// and rounds to the nearest whole kcal.
func ComputeBMR(weightKg, heightCm, ageYears float64, gender Gender) (BMRResult, error) {
	m := Measurement{WeightKg: weightKg, HeightCm: heightCm, AgeYears: ageYears, Gender: gender}
	if err := m.ValidateMetabolic(); err != nil {
		return BMRResult{}, err
	}

	offset := bmrMaleOffset
	if gender == GenderFemale {
		offset = bmrFemaleOffset
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*ageYears + offset
	return BMRResult{BMR: RoundHalfUp(bmr)}, nil
}
