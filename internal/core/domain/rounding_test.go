package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundHalfAway(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   float64
	}{
		{"rounds down", 1.24, 1, 1.2},
		{"tie goes up", 1.25, 1, 1.3},
		{"decimal tie below binary value", 1.005, 2, 1.01},
		{"negative tie goes away from zero", -2.345, 2, -2.35},
		{"no extra digits", 3.5, 1, 3.5},
		{"integer input", 3, 2, 3},
		{"zero places", 2.5, 0, 3},
		{"zero places negative", -2.5, 0, -3},
		{"carry into integer part", 9.96, 1, 10},
		{"long fraction", 22.857142857142858, 1, 22.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundHalfAway(tt.value, tt.places))
		})
	}
}

func TestRoundHalfAway_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(RoundHalfAway(math.NaN(), 1)))
	assert.True(t, math.IsInf(RoundHalfAway(math.Inf(1), 1), 1))
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 1649.0, RoundHalfUp(1648.75))
	assert.Equal(t, 1345.0, RoundHalfUp(1345.25))
	assert.Equal(t, 868.0, RoundHalfUp(867.5))
	assert.Equal(t, -248.0, RoundHalfUp(-248.5))
}
