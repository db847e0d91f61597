// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/core/ports/driving"
)

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionDefaultCalculator
	SectionOutputFormat
	SectionMetrics
)

// Key constants for key handling.
const (
	keyUp    = "up"
	keyDown  = "down"
	keyEnter = "enter"
	keyEsc   = "esc"
)

// overviewItems is the number of rows on the overview.
const overviewItems = 3

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	section  Section
	selected int

	textfileInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	textfileInput := textinput.New()
	textfileInput.Placeholder = "/var/lib/node_exporter/medcalc.prom (empty disables)"
	textfileInput.CharLimit = 512
	textfileInput.Width = 60

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		textfileInput:   textfileInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.section = SectionOverview
		v.textfileInput.Blur()
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEsc {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewCalculators}
			}
		}
		v.selected = int(v.section) - 1
		v.section = SectionOverview
		v.textfileInput.Blur()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionDefaultCalculator:
		return v.handleCalculatorKeys(msg)
	case SectionOutputFormat:
		return v.handleOutputKeys(msg)
	case SectionMetrics:
		return v.handleMetricsKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < overviewItems-1 {
			v.selected++
		}
	case keyEnter:
		if v.settings == nil {
			return v, nil
		}
		switch v.selected {
		case 0:
			v.section = SectionDefaultCalculator
			v.selected = indexOf(domain.AllCalculators(), v.settings.Display.DefaultCalculator)
		case 1:
			v.section = SectionOutputFormat
			v.selected = indexOf(domain.AllOutputFormats(), v.settings.Display.Output)
		case 2:
			v.section = SectionMetrics
			v.textfileInput.SetValue(v.settings.Metrics.Textfile)
			return v, v.textfileInput.Focus()
		}
	}
	return v, nil
}

func (v *View) handleCalculatorKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	calcs := domain.AllCalculators()

	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(calcs)-1 {
			v.selected++
		}
	case keyEnter:
		calc := calcs[v.selected]
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetDefaultCalculator(calc)
		})
	}
	return v, nil
}

func (v *View) handleOutputKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	formats := domain.AllOutputFormats()

	switch msg.String() {
	case keyUp, "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < len(formats)-1 {
			v.selected++
		}
	case keyEnter:
		format := formats[v.selected]
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetOutputFormat(format)
		})
	}
	return v, nil
}

func (v *View) handleMetricsKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == keyEnter {
		path := strings.TrimSpace(v.textfileInput.Value())
		return v, v.save(func(s driving.SettingsService) error {
			return s.SetMetricsTextfile(path)
		})
	}

	var cmd tea.Cmd
	v.textfileInput, cmd = v.textfileInput.Update(msg)
	return v, cmd
}

// save returns a command applying one change through the settings service.
func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	service := v.settingsService
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsSaved{Err: fmt.Errorf("settings service not available")}
		}
		return messages.SettingsSaved{Err: apply(service)}
	}
}

func indexOf[T comparable](items []T, item T) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return 0
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionDefaultCalculator:
		calcs := domain.AllCalculators()
		labels := make([]string, len(calcs))
		for i, c := range calcs {
			labels[i] = c.Title()
		}
		b.WriteString(v.renderSelect("Default Calculator", labels,
			indexOf(calcs, v.settings.Display.DefaultCalculator)))
	case SectionOutputFormat:
		formats := domain.AllOutputFormats()
		labels := make([]string, len(formats))
		for i, f := range formats {
			labels[i] = f.Description()
		}
		b.WriteString(v.renderSelect("CLI Output Format", labels,
			indexOf(formats, v.settings.Display.Output)))
	case SectionMetrics:
		b.WriteString(v.styles.Subtitle.Render("Prometheus Textfile"))
		b.WriteString("\n\n")
		b.WriteString(v.textfileInput.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	textfile := "Disabled"
	if v.settings.Metrics.Enabled() {
		textfile = v.settings.Metrics.Textfile
	}

	items := []struct {
		label string
		value string
	}{
		{label: "Default Calculator", value: v.settings.Display.DefaultCalculator.Title()},
		{label: "CLI Output", value: v.settings.Display.Output.Description()},
		{label: "Metrics Textfile", value: textfile},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderSelect(title string, labels []string, current int) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render("Select " + title))
	b.WriteString("\n\n")

	for i, label := range labels {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}

		marker := ""
		if i == current {
			marker = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, label, marker)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionDefaultCalculator, SectionOutputFormat:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionMetrics:
		return v.styles.Help.Render("[enter] save  [esc] cancel")
	default:
		return ""
	}
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings, nil before loading.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.section = SectionOverview
	v.selected = 0
	v.err = nil
	v.textfileInput.SetValue("")
	v.textfileInput.Blur()
}
