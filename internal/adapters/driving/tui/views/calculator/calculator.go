// Package calculator provides the form view behind each calculator tab.
package calculator

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
)

// noFocus means no field has focus; keys go to the app.
const noFocus = -1

type fieldSpec struct {
	label string
	unit  string
}

var fieldSpecs = map[string]fieldSpec{
	domain.FieldWeight: {label: "Weight", unit: "kg"},
	domain.FieldHeight: {label: "Height", unit: "cm"},
	domain.FieldAge:    {label: "Age", unit: "years"},
	domain.FieldGender: {label: "Gender"},
}

// View is the form for one calculator. It holds at most one result, which
// a new submission replaces and a reset clears.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	service driving.CalculatorService
	calc    domain.Calculator

	// order lists the fields in focus order.
	order  []string
	inputs map[string]*input.NumberField

	gender    domain.Gender
	genderErr string

	focus  int
	result *domain.Result
	err    error

	// gen counts submits and resets; only the latest submission's outcome
	// is applied.
	gen uint64

	width  int
	height int
}

// NewView creates the form for calc.
func NewView(s *styles.Styles, km *keymap.KeyMap, service driving.CalculatorService, calc domain.Calculator) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		service: service,
		calc:    calc,
		order:   calc.Fields(),
		inputs:  make(map[string]*input.NumberField),
		gender:  domain.GenderMale,
		focus:   noFocus,
	}
	for _, field := range v.order {
		if field == domain.FieldGender {
			continue
		}
		spec := fieldSpecs[field]
		v.inputs[field] = input.NewNumberField(s, field, spec.label, spec.unit)
	}
	return v
}

// Calculator returns the calculator this form drives.
func (v *View) Calculator() domain.Calculator {
	return v.calc
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Focus focuses the first field.
func (v *View) Focus() tea.Cmd {
	return v.focusAt(0)
}

// Blur removes focus from every field.
func (v *View) Blur() {
	v.focusAt(noFocus)
}

// Focused reports whether a field has focus.
func (v *View) Focused() bool {
	return v.focus != noFocus
}

// FocusedField returns the focused field name, empty when none.
func (v *View) FocusedField() string {
	if v.focus == noFocus {
		return ""
	}
	return v.order[v.focus]
}

func (v *View) focusAt(i int) tea.Cmd {
	v.focus = i
	var cmd tea.Cmd
	for j, field := range v.order {
		in, ok := v.inputs[field]
		if !ok {
			continue
		}
		if j == i {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CalculationCompleted:
		if v.Accepts(msg) {
			v.applyResult(msg)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	if v.Focused() {
		if in, ok := v.inputs[v.FocusedField()]; ok {
			_, cmd := in.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, v.keymap.Reset) {
		return v, v.Reset()
	}
	if keymap.Matches(keyStr, v.keymap.Submit) {
		return v, v.Submit()
	}

	if !v.Focused() {
		if keymap.Matches(keyStr, v.keymap.Next) || keymap.Matches(keyStr, v.keymap.Down) {
			return v, v.Focus()
		}
		return v, nil
	}

	switch {
	case keymap.Matches(keyStr, v.keymap.Back):
		v.Blur()
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Next):
		if v.focus == len(v.order)-1 {
			return v, v.Submit()
		}
		return v, v.focusAt(v.focus + 1)
	case keymap.Matches(keyStr, v.keymap.Down):
		if v.focus < len(v.order)-1 {
			return v, v.focusAt(v.focus + 1)
		}
		return v, nil
	case keymap.Matches(keyStr, v.keymap.Up):
		if v.focus > 0 {
			return v, v.focusAt(v.focus - 1)
		}
		return v, nil
	}

	if v.FocusedField() == domain.FieldGender {
		v.handleGenderKey(keyStr)
		return v, nil
	}

	in := v.inputs[v.FocusedField()]
	_, cmd := in.Update(msg)
	return v, cmd
}

func (v *View) handleGenderKey(keyStr string) {
	switch {
	case keyStr == "m":
		v.gender = domain.GenderMale
	case keyStr == "f":
		v.gender = domain.GenderFemale
	case keymap.Matches(keyStr, v.keymap.Toggle):
		if v.gender == domain.GenderMale {
			v.gender = domain.GenderFemale
		} else {
			v.gender = domain.GenderMale
		}
	default:
		return
	}
	v.genderErr = ""
}

// Submit reads the form and returns a command that runs the calculator.
// Empty or unparsable fields fail locally without calling the service.
func (v *View) Submit() tea.Cmd {
	v.gen++
	v.clearErrors()

	var (
		m        domain.Measurement
		firstErr error
	)
	for _, field := range v.order {
		if field == domain.FieldGender {
			m.Gender = v.gender
			continue
		}
		in := v.inputs[field]
		value, err := in.Float()
		if err != nil {
			in.SetError(err.Error())
			if firstErr == nil {
				firstErr = &domain.ValidationError{Field: field, Reason: err.Error()}
			}
			continue
		}
		switch field {
		case domain.FieldWeight:
			m.WeightKg = value
		case domain.FieldHeight:
			m.HeightCm = value
		case domain.FieldAge:
			m.AgeYears = value
		}
	}

	calc, gen := v.calc, v.gen
	if firstErr != nil {
		return func() tea.Msg {
			return messages.CalculationCompleted{Calculator: calc, Generation: gen, Err: firstErr}
		}
	}

	service := v.service
	return func() tea.Msg {
		if service == nil {
			return messages.CalculationCompleted{Calculator: calc, Generation: gen, Err: fmt.Errorf("calculator service not available")}
		}
		result, err := service.Calculate(calc, m)
		return messages.CalculationCompleted{Calculator: calc, Generation: gen, Result: result, Err: err}
	}
}

// Accepts reports whether msg is the outcome of this form's latest submit.
// Outcomes of earlier submits, or of submits before a reset, are stale.
func (v *View) Accepts(msg messages.CalculationCompleted) bool {
	return msg.Calculator == v.calc && msg.Generation == v.gen
}

func (v *View) applyResult(msg messages.CalculationCompleted) {
	v.result = nil
	v.err = nil

	if msg.Err == nil {
		r := msg.Result
		v.result = &r
		v.clearErrors()
		return
	}

	ve, ok := domain.AsValidationError(msg.Err)
	if !ok {
		v.err = msg.Err
		return
	}
	v.setFieldError(ve)
}

func (v *View) setFieldError(ve *domain.ValidationError) {
	text := ve.Reason
	if text == "" {
		text = fmt.Sprintf("must be between %g and %g", ve.Min, ve.Max)
	}
	if ve.Field == domain.FieldGender {
		v.genderErr = text
		return
	}
	if in, ok := v.inputs[ve.Field]; ok {
		in.SetError(text)
		return
	}
	v.err = ve
}

func (v *View) clearErrors() {
	for _, in := range v.inputs {
		in.SetError("")
	}
	v.genderErr = ""
	v.err = nil
}

// Reset clears every field, the held result and any errors. Gender goes
// back to male.
func (v *View) Reset() tea.Cmd {
	for _, in := range v.inputs {
		in.Reset()
	}
	v.gen++
	v.gender = domain.GenderMale
	v.genderErr = ""
	v.result = nil
	v.err = nil

	calc := v.calc
	return func() tea.Msg {
		return messages.FormReset{Calculator: calc}
	}
}

// Result returns the held result, nil when none.
func (v *View) Result() *domain.Result {
	return v.result
}

// Err returns the last non-validation error.
func (v *View) Err() error {
	return v.err
}

// FieldError returns the message shown under a field.
func (v *View) FieldError(field string) string {
	if field == domain.FieldGender {
		return v.genderErr
	}
	if in, ok := v.inputs[field]; ok {
		return in.Error()
	}
	return ""
}

// SetValue fills a numeric field.
func (v *View) SetValue(field, value string) {
	if in, ok := v.inputs[field]; ok {
		in.SetValue(value)
	}
}

// Value returns a numeric field's text.
func (v *View) Value(field string) string {
	if in, ok := v.inputs[field]; ok {
		return in.Value()
	}
	return ""
}

// Gender returns the selected gender.
func (v *View) Gender() domain.Gender {
	return v.gender
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// View renders the form and result.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.calc.Title()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.calc.Formula()))
	b.WriteString("\n\n")

	for _, field := range v.order {
		if field == domain.FieldGender {
			b.WriteString(v.renderGender())
		} else {
			b.WriteString(v.inputs[field].View())
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	}

	if v.result != nil {
		b.WriteString("\n")
		b.WriteString(v.renderResult())
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderGender() string {
	label := v.styles.Label.Render(fieldSpecs[domain.FieldGender].label)
	if v.FocusedField() == domain.FieldGender {
		label = v.styles.FocusedLabel.Render(fieldSpecs[domain.FieldGender].label)
	}

	options := make([]string, 0, len(domain.AllGenders()))
	for _, g := range domain.AllGenders() {
		if g == v.gender {
			options = append(options, v.styles.Selected.Render(" "+g.Description()+" "))
		} else {
			options = append(options, v.styles.Muted.Render(" "+g.Description()+" "))
		}
	}

	row := label + " " + strings.Join(options, " ")
	if v.genderErr != "" {
		row += "\n" + v.styles.Error.Render("  "+v.genderErr)
	}
	return row
}

func (v *View) renderResult() string {
	r := v.result
	lines := []string{
		v.styles.ResultValue.Render(r.FormattedValue()) + " " + v.styles.Normal.Render(r.Unit),
	}
	if r.Category != "" {
		lines = append(lines, v.styles.Subtitle.Render(r.Category.String()))
	}
	return v.styles.ResultBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
