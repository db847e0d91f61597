// Package metrics provides a Prometheus implementation of the driven
// metrics ports. Collectors live on a private registry so that several
// recorders (one per test, say) never collide on the default registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/logger"
)

// Ensure Recorder implements the interfaces.
var (
	_ driven.MetricsRecorder = (*Recorder)(nil)
	_ driven.MetricsExporter = (*Recorder)(nil)
)

const namespace = "medcalc"

var log = logger.Named("metrics")

// Recorder counts calculations and validation failures.
type Recorder struct {
	registry *prometheus.Registry

	CalculationsTotal   *prometheus.CounterVec
	ValidationErrors    *prometheus.CounterVec
	CalculationDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,

		CalculationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of successful calculations by calculator",
		}, []string{"calculator"}),

		ValidationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_errors_total",
			Help:      "Total number of rejected inputs by calculator and field",
		}, []string{"calculator", "field"}),

		CalculationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "Time spent validating and computing a result",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 6),
		}, []string{"calculator"}),
	}
}

// ObserveCalculation records a successful calculation.
func (r *Recorder) ObserveCalculation(calc domain.Calculator, elapsed time.Duration) {
	r.CalculationsTotal.WithLabelValues(calc.String()).Inc()
	r.CalculationDuration.WithLabelValues(calc.String()).Observe(elapsed.Seconds())
}

// ObserveValidationError records a rejected input.
func (r *Recorder) ObserveValidationError(calc domain.Calculator, field string) {
	r.ValidationErrors.WithLabelValues(calc.String(), field).Inc()
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the registry in the node-exporter textfile format.
// The file is written to a temporary name and renamed into place.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	log.Debug("wrote %s", path)
	return nil
}
