package domain

import (
	"math"
	"strings"
)

// Field names used in validation errors and adapter schemas.
const (
	FieldWeight = "weight_kg"
	FieldHeight = "height_cm"
	FieldAge    = "age_years"
	FieldGender = "gender"
)

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies within the range. NaN never does.
func (r Range) Contains(v float64) bool {
	return !math.IsNaN(v) && v >= r.Min && v <= r.Max
}

// Accepted input ranges.
var (
	WeightRange = Range{Min: 20, Max: 500}
	HeightRange = Range{Min: 50, Max: 300}
	AgeRange    = Range{Min: 1, Max: 120}
)

// Gender selects the constant term of the Mifflin-St Jeor equation.
type Gender string

// Accepted genders.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid returns true if the gender is recognised.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (g Gender) String() string {
	return string(g)
}

// Description returns a human-readable label.
func (g Gender) Description() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return unknownDescription
	}
}

// ParseGender parses a gender ignoring case and surrounding whitespace.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", &ValidationError{Field: FieldGender, Reason: "must be male or female, got " + quote(s)}
	}
	return g, nil
}

// AllGenders returns the accepted genders in display order.
func AllGenders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Measurement holds the inputs shared by the calculators.
// AgeYears and Gender are only read by the BMR calculator.
type Measurement struct {
	WeightKg float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm float64 `json:"height_cm" yaml:"height_cm"`
	AgeYears float64 `json:"age_years,omitempty" yaml:"age_years,omitempty"`
	Gender   Gender  `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// ValidateBody checks weight and height.
func (m Measurement) ValidateBody() error {
	if err := checkRange(FieldWeight, m.WeightKg, WeightRange); err != nil {
		return err
	}
	return checkRange(FieldHeight, m.HeightCm, HeightRange)
}

// ValidateMetabolic checks everything ValidateBody does plus age and gender.
func (m Measurement) ValidateMetabolic() error {
	if err := m.ValidateBody(); err != nil {
		return err
	}
	if err := checkRange(FieldAge, m.AgeYears, AgeRange); err != nil {
		return err
	}
	if !m.Gender.IsValid() {
		return &ValidationError{Field: FieldGender, Reason: "must be male or female, got " + quote(string(m.Gender))}
	}
	return nil
}

func checkRange(field string, v float64, r Range) error {
	if r.Contains(v) {
		return nil
	}
	return &ValidationError{Field: field, Value: v, Min: r.Min, Max: r.Max}
}

func quote(s string) string {
	return "\"" + s + "\""
}
