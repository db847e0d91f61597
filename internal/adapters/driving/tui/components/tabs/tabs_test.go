package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

func TestBar_StartsOnBMI(t *testing.T) {
	bar := NewBar(nil)

	assert.Equal(t, domain.CalculatorBMI, bar.Active())
}

func TestBar_NextPrevWrap(t *testing.T) {
	bar := NewBar(nil)

	assert.Equal(t, domain.CalculatorBMR, bar.Next())
	assert.Equal(t, domain.CalculatorBSA, bar.Next())
	assert.Equal(t, domain.CalculatorBMI, bar.Next())
	assert.Equal(t, domain.CalculatorBSA, bar.Prev())
}

func TestBar_Select(t *testing.T) {
	bar := NewBar(nil)

	assert.True(t, bar.Select(domain.CalculatorBSA))
	assert.Equal(t, domain.CalculatorBSA, bar.Active())

	assert.False(t, bar.Select(domain.Calculator("bfp")))
	assert.Equal(t, domain.CalculatorBSA, bar.Active())

	assert.True(t, bar.SelectIndex(1))
	assert.Equal(t, domain.CalculatorBMR, bar.Active())
	assert.False(t, bar.SelectIndex(3))
}

func TestBar_View(t *testing.T) {
	view := NewBar(nil).View()

	assert.Contains(t, view, "1 BMI")
	assert.Contains(t, view, "2 BMR")
	assert.Contains(t, view, "3 BSA")
}
