// Package domain defines the core calculator entities for medcalc.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Measurement: body measurements entered by a user
//   - Gender: the sex used by the Mifflin-St Jeor equation
//   - BMIResult, BMRResult, BSAResult: derived values
//   - Calculator: identifies one of the three calculators
//
// The three formulas (ComputeBMI, ComputeBMR, ComputeBSA) live here as
// pure functions. Each validates its own inputs and returns a
// *ValidationError wrapping ErrInvalidInput when a value is out of range.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
