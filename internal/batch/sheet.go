// Package batch computes many measurements at once. A sheet is a YAML
// document listing measurements; a report pairs each requested
// calculator with its result or validation error, and can be written
// as an XLSX workbook.
package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// ErrEmptySheet is returned when a sheet has no entries.
var ErrEmptySheet = errors.New("batch: sheet has no measurements")

// Entry is one row of a sheet.
type Entry struct {
	// Name labels the row in reports. Defaults to "#<index>".
	Name string `yaml:"name"`

	// Calculators restricts which calculators run. Empty means BMI and BSA,
	// plus BMR when age or gender is given.
	Calculators []domain.Calculator `yaml:"calculators"`

	domain.Measurement `yaml:",inline"`
}

// Sheet is the decoded YAML document.
type Sheet struct {
	Measurements []Entry `yaml:"measurements"`
}

// ParseSheet decodes a sheet. Unknown keys and unknown calculator names
// are rejected; range validation is left to the calculators.
func ParseSheet(r io.Reader) (*Sheet, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sheet Sheet
	if err := dec.Decode(&sheet); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySheet
		}
		return nil, fmt.Errorf("decoding sheet: %w", err)
	}
	if len(sheet.Measurements) == 0 {
		return nil, ErrEmptySheet
	}

	for i := range sheet.Measurements {
		e := &sheet.Measurements[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("#%d", i+1)
		}
		e.Gender = domain.Gender(strings.ToLower(strings.TrimSpace(string(e.Gender))))
		for j, c := range e.Calculators {
			parsed, err := domain.ParseCalculator(string(c))
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w: %q", e.Name, err, c)
			}
			e.Calculators[j] = parsed
		}
	}

	return &sheet, nil
}

// calculators returns the calculators to run for an entry.
func (e Entry) calculators() []domain.Calculator {
	if len(e.Calculators) > 0 {
		return e.Calculators
	}
	calcs := []domain.Calculator{domain.CalculatorBMI, domain.CalculatorBSA}
	if e.AgeYears != 0 || e.Gender != "" {
		calcs = append(calcs, domain.CalculatorBMR)
	}
	return calcs
}
