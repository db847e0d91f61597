package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driven"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
	"github.com/custodia-labs/medcalc/internal/logger"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

var calcLog = logger.Named("calculator")

// CalculatorService runs the domain formulas and reports what happened
// to the optional metrics recorder.
type CalculatorService struct {
	metrics driven.MetricsRecorder
	now     func() time.Time
}

// NewCalculatorService creates a calculator service.
// metrics may be nil.
func NewCalculatorService(metrics driven.MetricsRecorder) *CalculatorService {
	return &CalculatorService{
		metrics: metrics,
		now:     time.Now,
	}
}

// BMI computes body mass index.
func (s *CalculatorService) BMI(m domain.Measurement) (domain.BMIResult, error) {
	start := s.now()
	result, err := domain.ComputeBMI(m.WeightKg, m.HeightCm)
	if err != nil {
		return domain.BMIResult{}, s.rejected(domain.CalculatorBMI, err)
	}
	s.computed(domain.CalculatorBMI, start)
	calcLog.Debug("bmi weight=%v height=%v -> %v (%s)", m.WeightKg, m.HeightCm, result.BMI, result.Category)
	return result, nil
}

// BMR computes basal metabolic rate.
func (s *CalculatorService) BMR(m domain.Measurement) (domain.BMRResult, error) {
	start := s.now()
	result, err := domain.ComputeBMR(m.WeightKg, m.HeightCm, m.AgeYears, m.Gender)
	if err != nil {
		return domain.BMRResult{}, s.rejected(domain.CalculatorBMR, err)
	}
	s.computed(domain.CalculatorBMR, start)
	calcLog.Debug("bmr weight=%v height=%v age=%v gender=%s -> %v",
		m.WeightKg, m.HeightCm, m.AgeYears, m.Gender, result.BMR)
	return result, nil
}

// BSA computes body surface area.
func (s *CalculatorService) BSA(m domain.Measurement) (domain.BSAResult, error) {
	start := s.now()
	result, err := domain.ComputeBSA(m.WeightKg, m.HeightCm)
	if err != nil {
		return domain.BSAResult{}, s.rejected(domain.CalculatorBSA, err)
	}
	s.computed(domain.CalculatorBSA, start)
	calcLog.Debug("bsa weight=%v height=%v -> %v", m.WeightKg, m.HeightCm, result.BSA)
	return result, nil
}

// Calculate dispatches to the named calculator.
func (s *CalculatorService) Calculate(calc domain.Calculator, m domain.Measurement) (domain.Result, error) {
	switch calc {
	case domain.CalculatorBMI:
		r, err := s.BMI(m)
		if err != nil {
			return domain.Result{}, err
		}
		return r.Result(), nil
	case domain.CalculatorBMR:
		r, err := s.BMR(m)
		if err != nil {
			return domain.Result{}, err
		}
		return r.Result(), nil
	case domain.CalculatorBSA:
		r, err := s.BSA(m)
		if err != nil {
			return domain.Result{}, err
		}
		return r.Result(), nil
	default:
		return domain.Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownCalculator, calc)
	}
}

func (s *CalculatorService) computed(calc domain.Calculator, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCalculation(calc, s.now().Sub(start))
	}
}

// rejected records a validation failure and passes the error through unchanged.
func (s *CalculatorService) rejected(calc domain.Calculator, err error) error {
	field := "unknown"
	if ve, ok := domain.AsValidationError(err); ok {
		field = ve.Field
	}
	calcLog.Debug("%s rejected: %v", calc, err)
	if s.metrics != nil {
		s.metrics.ObserveValidationError(calc, field)
	}
	return err
}
