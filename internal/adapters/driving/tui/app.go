package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/components/tabs"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/medcalc/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/medcalc/internal/core/domain"
	"github.com/custodia-labs/medcalc/internal/logger"
)

var log = logger.Named("tui")

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports

	// ctx bounds the config watcher; cancel stops it on quit.
	ctx    context.Context
	cancel context.CancelFunc

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	tabs         *tabs.Bar
	forms        map[domain.Calculator]*calculator.View
	settingsView *settings.View
	statusBar    *status.Bar

	currentView messages.ViewType
	settings    *domain.AppSettings

	// configChanged receives a value per config file change.
	configChanged chan struct{}

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
// The initial tab comes from the settings when available.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	forms := make(map[domain.Calculator]*calculator.View)
	for _, calc := range domain.AllCalculators() {
		forms[calc] = calculator.NewView(s, km, ports.Calculator, calc)
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ports:         ports,
		ctx:           ctx,
		cancel:        cancel,
		styles:        s,
		keymap:        km,
		help:          help.New(),
		tabs:          tabs.NewBar(s),
		forms:         forms,
		settingsView:  settings.NewView(s, ports.Settings),
		statusBar:     status.NewBar(s, km),
		currentView:   messages.ViewCalculators,
		configChanged: make(chan struct{}, 1),
	}

	if ports.Settings != nil {
		current, err := ports.Settings.Get()
		if err != nil {
			log.Warn("loading settings: %v", err)
		} else {
			app.settings = current
			app.tabs.Select(current.Display.DefaultCalculator)
		}
	}

	return app, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.cancel()
	a.ctx, a.cancel = context.WithCancel(ctx)
	return a
}

// Init implements tea.Model.
// It starts the config watcher when a config store is available.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("medcalc"),
	}

	if a.ports.Config != nil {
		go a.watchConfig()
		cmds = append(cmds, a.waitForConfigChange())
	}

	return tea.Batch(cmds...)
}

func (a *App) watchConfig() {
	err := a.ports.Config.Watch(a.ctx, func() {
		select {
		case a.configChanged <- struct{}{}:
		default:
		}
	})
	if err != nil {
		log.Warn("config watch stopped: %v", err)
	}
}

// waitForConfigChange returns a command that blocks until the config
// changes or the app stops.
func (a *App) waitForConfigChange() tea.Cmd {
	ctx, changed := a.ctx, a.configChanged
	return func() tea.Msg {
		select {
		case <-changed:
			return messages.ConfigChanged{}
		case <-ctx.Done():
			return nil
		}
	}
}

func (a *App) loadSettings() tea.Cmd {
	service := a.ports.Settings
	return func() tea.Msg {
		if service == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		current, err := service.Get()
		return messages.SettingsLoaded{Settings: current, Err: err}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.CalculationCompleted:
		form, ok := a.forms[msg.Calculator]
		if !ok || !form.Accepts(msg) {
			return a, nil
		}
		form.Update(msg)
		a.showOutcome(msg)
		return a, nil

	case messages.FormReset:
		a.statusBar.Clear()
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		if msg.View == messages.ViewSettings {
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		}
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err == nil {
			a.settings = msg.Settings
		}
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ConfigChanged:
		log.Debug("config changed, reloading settings")
		a.statusBar.SetState(status.StateReady)
		a.statusBar.SetMessage("Settings reloaded")
		return a, tea.Batch(a.loadSettings(), a.waitForConfigChange())

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, a.quit()
	}

	// Forward other messages (cursor blinks) to the active view.
	switch a.currentView {
	case messages.ViewCalculators:
		_, cmd = a.activeForm().Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return a, cmd
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return a, a.quit()
	}

	switch a.currentView {
	case messages.ViewSettings:
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewHelp:
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) {
			a.currentView = messages.ViewCalculators
		} else if keyStr == "q" {
			return a, a.quit()
		}
		return a, nil

	case messages.ViewCalculators:
	}

	form := a.activeForm()

	switch {
	case keymap.Matches(keyStr, a.keymap.NextTab):
		return a, a.switchTab(a.tabs.Next)
	case keymap.Matches(keyStr, a.keymap.PrevTab):
		return a, a.switchTab(a.tabs.Prev)
	}

	if !form.Focused() {
		switch {
		case keymap.Matches(keyStr, a.keymap.Quit):
			return a, a.quit()
		case keymap.Matches(keyStr, a.keymap.JumpTab):
			i := int(keyStr[0] - '1')
			return a, a.switchTab(func() domain.Calculator {
				a.tabs.SelectIndex(i)
				return a.tabs.Active()
			})
		case keymap.Matches(keyStr, a.keymap.Help):
			a.currentView = messages.ViewHelp
			return a, nil
		case keymap.Matches(keyStr, a.keymap.Settings) && a.ports.Settings != nil:
			return a, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewSettings}
			}
		}
	}

	_, cmd := form.Update(msg)
	a.syncEditingState()
	return a, cmd
}

// switchTab blurs the current form, applies move and reports the new tab.
func (a *App) switchTab(move func() domain.Calculator) tea.Cmd {
	a.activeForm().Blur()
	calc := move()
	a.statusBar.Clear()
	return func() tea.Msg {
		return messages.TabChanged{Calculator: calc}
	}
}

func (a *App) syncEditingState() {
	switch {
	case a.activeForm().Focused():
		if a.statusBar.State() == status.StateReady {
			a.statusBar.SetState(status.StateEditing)
		}
	case a.statusBar.State() == status.StateEditing:
		a.statusBar.SetState(status.StateReady)
	}
}

func (a *App) showOutcome(msg messages.CalculationCompleted) {
	switch {
	case msg.Err == nil:
		a.statusBar.SetState(status.StateCalculated)
		a.statusBar.SetMessage(msg.Result.Summary())
	case isValidation(msg.Err):
		a.statusBar.SetState(status.StateInvalid)
	default:
		a.statusBar.SetState(status.StateError)
		a.statusBar.SetMessage(msg.Err.Error())
	}
}

func isValidation(err error) bool {
	_, ok := domain.AsValidationError(err)
	return ok
}

func (a *App) quit() tea.Cmd {
	a.cancel()
	return tea.Quit
}

func (a *App) activeForm() *calculator.View {
	return a.forms[a.tabs.Active()]
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewSettings:
		body = a.settingsView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = lipgloss.JoinVertical(lipgloss.Left,
			a.tabs.View(),
			"",
			a.activeForm().View(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", a.statusBar.View())
}

func (a *App) viewHelp() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		a.help.FullHelpView(a.keymap.FullHelp()),
		"",
		a.styles.Help.Render("Number fields accept digits and one decimal point."),
		a.styles.Help.Render("On the gender field press m, f or ←/→ to choose."),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		a.styles.Border.Padding(0, 1).Render(body),
		"",
		a.styles.Help.Render("[esc] back"),
	)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.statusBar.SetWidth(width)
	a.settingsView.SetDimensions(width, height)
	for _, form := range a.forms {
		form.SetDimensions(width, height)
	}
}

// ActiveCalculator returns the calculator of the visible tab.
func (a *App) ActiveCalculator() domain.Calculator {
	return a.tabs.Active()
}

// Form returns the form for a calculator.
func (a *App) Form(calc domain.Calculator) *calculator.View {
	return a.forms[calc]
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Settings returns the last loaded settings.
func (a *App) Settings() *domain.AppSettings {
	return a.settings
}

// Status returns the status bar state.
func (a *App) Status() status.State {
	return a.statusBar.State()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}
