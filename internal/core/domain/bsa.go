package domain

import "math"

// BSAResult is the outcome of the BSA calculator, in square metres.
type BSAResult struct {
	BSA float64 `json:"bsa"`
}

// ComputeBSA applies the Mosteller formula sqrt(height*weight/3600)
// and rounds to two decimals.
func ComputeBSA(weightKg, heightCm float64) (BSAResult, error) {
	m := Measurement{WeightKg: weightKg, HeightCm: heightCm}
	if err := m.ValidateBody(); err != nil {
		return BSAResult{}, err
	}

	bsa := math.Sqrt((heightCm * weightKg) / 3600)
	return BSAResult{BSA: RoundHalfAway(bsa, 2)}, nil
}
