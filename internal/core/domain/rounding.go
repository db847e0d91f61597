package domain

import (
	"math"
	"strconv"
	"strings"
)

// RoundHalfAway rounds v to the given number of decimal places, with ties
// going away from zero. The tie is decided on the shortest decimal form of v
// (the digits strconv prints), so 1.005 rounds to 1.01 even though its binary
// value is slightly below the tie.
func RoundHalfAway(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || places < 0 {
		return v
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= places {
		return v
	}

	end := dot + 1 + places
	if places == 0 {
		end = dot
	}
	truncated, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return v
	}
	if s[dot+1+places] >= '5' {
		truncated += math.Pow10(-places)
	}

	// Re-printing at the target precision drops the representation noise
	// left by the addition above.
	out, err := strconv.ParseFloat(strconv.FormatFloat(truncated, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	if v < 0 {
		return -out
	}
	return out
}

// RoundHalfUp rounds v to the nearest integer with ties going toward
// positive infinity.
func RoundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
