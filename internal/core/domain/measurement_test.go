package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange_Contains(t *testing.T) {
	r := Range{Min: 1, Max: 2}

	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(1.5))
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(0.999))
	assert.False(t, r.Contains(2.001))
	assert.False(t, r.Contains(math.NaN()))
	assert.False(t, r.Contains(math.Inf(1)))
}

func TestParseGender(t *testing.T) {
	tests := []struct {
		input   string
		want    Gender
		wantErr bool
	}{
		{"male", GenderMale, false},
		{"female", GenderFemale, false},
		{"  Female ", GenderFemale, false},
		{"MALE", GenderMale, false},
		{"m", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseGender(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGender_Description(t *testing.T) {
	assert.Equal(t, "Male", GenderMale.Description())
	assert.Equal(t, "Female", GenderFemale.Description())
	assert.Equal(t, "Unknown", Gender("x").Description())
}

func TestMeasurement_ValidateBody(t *testing.T) {
	assert.NoError(t, Measurement{WeightKg: 70, HeightCm: 175}.ValidateBody())

	err := Measurement{WeightKg: 70, HeightCm: 400}.ValidateBody()
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, FieldHeight, ve.Field)

	// Age and gender are ignored.
	assert.NoError(t, Measurement{WeightKg: 70, HeightCm: 175, AgeYears: 999}.ValidateBody())
}

func TestMeasurement_ValidateMetabolic(t *testing.T) {
	m := Measurement{WeightKg: 70, HeightCm: 175, AgeYears: 30, Gender: GenderMale}
	assert.NoError(t, m.ValidateMetabolic())

	m.AgeYears = 0
	ve, ok := AsValidationError(m.ValidateMetabolic())
	require.True(t, ok)
	assert.Equal(t, FieldAge, ve.Field)

	m.AgeYears = 30
	m.Gender = ""
	ve, ok = AsValidationError(m.ValidateMetabolic())
	require.True(t, ok)
	assert.Equal(t, FieldGender, ve.Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: FieldWeight, Value: 600, Min: 20, Max: 500}
	assert.Equal(t, "invalid input: weight_kg 600 must be between 20 and 500", err.Error())

	err = &ValidationError{Field: FieldGender, Reason: "must be male or female"}
	assert.Equal(t, "invalid input: gender: must be male or female", err.Error())
}

func TestAsValidationError_Wrapped(t *testing.T) {
	inner := &ValidationError{Field: FieldAge, Value: 0, Min: 1, Max: 120}
	wrapped := errors.Join(errors.New("context"), inner)

	ve, ok := AsValidationError(wrapped)
	require.True(t, ok)
	assert.Same(t, inner, ve)

	_, ok = AsValidationError(errors.New("plain"))
	assert.False(t, ok)
}
