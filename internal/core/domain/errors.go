package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates a measurement outside its accepted range
	// or an unrecognised gender. Every ValidationError wraps it.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCalculator indicates a calculator name that is not bmi, bmr or bsa.
	ErrUnknownCalculator = errors.New("unknown calculator")
)

// ValidationError describes a single rejected input.
type ValidationError struct {
	// Field is the input name, e.g. "weight_kg".
	Field string

	// Value is the rejected value. Zero for non-numeric fields.
	Value float64

	// Min and Max are the inclusive bounds the value had to satisfy.
	// Both are zero when Reason is set instead.
	Min float64
	Max float64

	// Reason replaces the range message for non-numeric fields.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s: %s", ErrInvalidInput, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s must be between %s and %s",
		ErrInvalidInput, e.Field, formatNumber(e.Value), formatNumber(e.Min), formatNumber(e.Max))
}

// Unwrap allows errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
