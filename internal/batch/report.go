package batch

import (
	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
	"github.com/custodia-labs/medcalc/internal/logger"
)

var log = logger.Named("batch")

// Row is the outcome of one calculator on one entry.
// Exactly one of Result and Error is set.
type Row struct {
	Name        string             `json:"name"`
	Calculator  domain.Calculator  `json:"calculator"`
	Measurement domain.Measurement `json:"measurement"`
	Result      *domain.Result     `json:"result,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// Report is the outcome of a sheet.
type Report struct {
	Rows []Row `json:"rows"`
}

// Failed returns the number of rows with an error.
func (r *Report) Failed() int {
	n := 0
	for i := range r.Rows {
		if r.Rows[i].Error != "" {
			n++
		}
	}
	return n
}

// Run computes every entry of the sheet. Invalid entries produce error
// rows; they never stop the run.
func Run(calc driving.CalculatorService, sheet *Sheet) *Report {
	report := &Report{}

	for _, entry := range sheet.Measurements {
		for _, c := range entry.calculators() {
			row := Row{Name: entry.Name, Calculator: c, Measurement: entry.Measurement}
			result, err := calc.Calculate(c, entry.Measurement)
			if err != nil {
				row.Error = err.Error()
				log.Debug("%s/%s: %v", entry.Name, c, err)
			} else {
				row.Result = &result
			}
			report.Rows = append(report.Rows, row)
		}
	}

	log.Info("computed %d rows, %d failed", len(report.Rows), report.Failed())
	return report
}
