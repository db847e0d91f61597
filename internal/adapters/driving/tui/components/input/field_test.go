package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/medcalc/internal/core/domain"
)

func typeInto(f *NumberField, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewNumberField(t *testing.T) {
	f := NewNumberField(nil, domain.FieldWeight, "Weight", "kg")

	require.NotNil(t, f)
	assert.NotNil(t, f.styles)
	assert.Equal(t, domain.FieldWeight, f.Field())
	assert.Equal(t, "20-500", f.textinput.Placeholder)
	assert.False(t, f.Focused())
}

func TestNumberField_AcceptsDecimals(t *testing.T) {
	f := NewNumberField(nil, domain.FieldHeight, "Height", "cm")
	f.Focus()

	typeInto(f, "175.5")

	assert.Equal(t, "175.5", f.Value())
	v, err := f.Float()
	require.NoError(t, err)
	assert.Equal(t, 175.5, v)
}

func TestNumberField_RejectsNonNumericKeys(t *testing.T) {
	f := NewNumberField(nil, domain.FieldWeight, "Weight", "kg")
	f.Focus()

	typeInto(f, "7a0.1.2")

	assert.Equal(t, "70.12", f.Value())
}

func TestNumberField_FloatRequiresValue(t *testing.T) {
	f := NewNumberField(nil, domain.FieldAge, "Age", "years")

	_, err := f.Float()

	require.Error(t, err)
	assert.Equal(t, "age is required", err.Error())
}

func TestNumberField_ErrorLine(t *testing.T) {
	f := NewNumberField(nil, domain.FieldWeight, "Weight", "kg")
	f.SetValue("600")

	f.SetError("must be between 20 and 500")
	assert.Contains(t, f.View(), "must be between 20 and 500")

	f.Reset()
	assert.Empty(t, f.Value())
	assert.Empty(t, f.Error())
	assert.NotContains(t, f.View(), "must be between")
}
