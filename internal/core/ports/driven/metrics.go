package driven

import (
	"time"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// MetricsRecorder receives calculation telemetry from the core.
// Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	// ObserveCalculation records a successful calculation and its duration.
	ObserveCalculation(calc domain.Calculator, elapsed time.Duration)

	// ObserveValidationError records a rejected input.
	ObserveValidationError(calc domain.Calculator, field string)
}

// MetricsExporter writes collected metrics somewhere outside the process.
type MetricsExporter interface {
	// WriteTextfile writes all metrics in the Prometheus text format,
	// replacing the file atomically.
	WriteTextfile(path string) error
}
