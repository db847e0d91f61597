// Package input provides form input components for the TUI.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medcalc/internal/core/domain"
)

// NumberField is a labelled numeric input with an inline error line.
type NumberField struct {
	textinput textinput.Model
	styles    *styles.Styles
	field     string
	label     string
	unit      string
	err       string
}

// NewNumberField creates a field for one of the domain measurement fields.
func NewNumberField(s *styles.Styles, field, label, unit string) *NumberField {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 10
	ti.Prompt = ""
	if r, ok := domain.FieldRange(field); ok {
		ti.Placeholder = fmt.Sprintf("%g-%g", r.Min, r.Max)
	}

	return &NumberField{
		textinput: ti,
		styles:    s,
		field:     field,
		label:     label,
		unit:      unit,
	}
}

// Update handles input messages.
// Typed runes other than digits and a single decimal point are dropped.
func (f *NumberField) Update(msg tea.Msg) (*NumberField, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyRunes {
		k.Runes = f.numericRunes(k.Runes)
		if len(k.Runes) == 0 {
			return f, nil
		}
		msg = k
	}

	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

func (f *NumberField) numericRunes(in []rune) []rune {
	dot := strings.Contains(f.textinput.Value(), ".")
	out := make([]rune, 0, len(in))
	for _, r := range in {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, r)
		case r == '.' && !dot:
			dot = true
			out = append(out, r)
		}
	}
	return out
}

// View renders the label, input, unit and error line.
func (f *NumberField) View() string {
	label := f.styles.Label.Render(f.label)
	if f.Focused() {
		label = f.styles.FocusedLabel.Render(f.label)
	}
	input := f.styles.InputField.Render(f.textinput.View())
	unit := f.styles.Muted.Render(" " + f.unit)
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	row := lipgloss.JoinHorizontal(lipgloss.Center, label, input, unit)

	if f.err == "" {
		return row
	}
	return lipgloss.JoinVertical(lipgloss.Left, row, f.styles.Error.Render("  "+f.err))
}

// Float parses the current value.
func (f *NumberField) Float() (float64, error) {
	raw := strings.TrimSpace(f.textinput.Value())
	if raw == "" {
		return 0, fmt.Errorf("%s is required", strings.ToLower(f.label))
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", strings.ToLower(f.label))
	}
	return v, nil
}

// Field returns the domain field name, e.g. "weight_kg".
func (f *NumberField) Field() string {
	return f.field
}

// Value returns the current input value.
func (f *NumberField) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *NumberField) SetValue(value string) {
	f.textinput.SetValue(value)
}

// SetError sets the message shown under the field. Empty clears it.
func (f *NumberField) SetError(msg string) {
	f.err = msg
}

// Error returns the message shown under the field.
func (f *NumberField) Error() string {
	return f.err
}

// Focus sets focus on the input.
func (f *NumberField) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *NumberField) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *NumberField) Focused() bool {
	return f.textinput.Focused()
}

// Reset clears the input and its error.
func (f *NumberField) Reset() {
	f.textinput.Reset()
	f.err = ""
}
