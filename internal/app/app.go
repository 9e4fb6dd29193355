package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/detectaive/detectaive/internal/config"
	"github.com/detectaive/detectaive/internal/game"
	"github.com/detectaive/detectaive/internal/layout"
	"github.com/detectaive/detectaive/internal/logger"
	"github.com/detectaive/detectaive/internal/progress"
	"github.com/detectaive/detectaive/internal/router"
	"github.com/detectaive/detectaive/internal/theme"
	zone "github.com/lrstanley/bubblezone"
)

// Dimensions assumed until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// scrollStep is how many lines pgup/pgdown and the mouse wheel move.
const scrollStep = 5

// Options configures a Model.
type Options struct {
	// Navigator receives every navigation request. Nil discards them.
	Navigator router.Navigator
	// ProgressLabel is shown next to "New Case". Empty means "0/3".
	ProgressLabel string
	// Progress, if set, replaces the label whenever the engine publishes progress.
	Progress *progress.Watcher
	// Zones is used for mouse hit-testing. Nil creates a private manager.
	Zones *zone.Manager
}

// Model is the landing screen.
type Model struct {
	state State

	nav           router.Navigator
	progressLabel string
	progress      *progress.Watcher

	keys     KeyMap
	showHelp bool
	focus    Control
	scroll   int

	zones      *zone.Manager
	zonePrefix string

	layout layout.Layout
	width  int
	height int

	log *slog.Logger
}

// New creates the landing screen in its unmounted state.
func New(opts Options) Model {
	nav := opts.Navigator
	if nav == nil {
		nav = router.Discard
	}
	label := opts.ProgressLabel
	if label == "" {
		label = config.DefaultProgressLabel
	}
	zones := opts.Zones
	if zones == nil {
		zones = zone.New()
	}

	return Model{
		state:         NewState(),
		nav:           nav,
		progressLabel: label,
		progress:      opts.Progress,
		keys:          DefaultKeyMap(),
		focus:         ControlNewCase,
		zones:         zones,
		zonePrefix:    zones.NewPrefix(),
		layout:        layout.Calculate(defaultWidth, defaultHeight),
		width:         defaultWidth,
		height:        defaultHeight,
		log:           logger.ComponentLogger("app"),
	}
}

// Init returns the post-attach command, plus the progress watcher if any.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{mount}
	if m.progress != nil {
		cmds = append(cmds, m.watchProgressCmd())
	}
	return tea.Batch(cmds...)
}

func mount() tea.Msg {
	return MountedMsg{}
}

// watchProgressCmd waits for the next progress change.
func (m Model) watchProgressCmd() tea.Cmd {
	w := m.progress
	return func() tea.Msg {
		p, err := w.Next()
		if err != nil {
			// Watcher closed; stop listening.
			return nil
		}
		return ProgressMsg{Label: p.Label()}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = layout.Calculate(msg.Width, msg.Height)
		m.clampScroll()
		return m, nil

	case MountedMsg:
		if m.state.Mount() {
			m.log.Debug("mounted", "theme", m.state.Theme.String())
		}
		return m, nil

	case ProgressMsg:
		m.progressLabel = msg.Label
		m.log.Debug("progress updated", "label", msg.Label)
		if m.progress != nil {
			return m, m.watchProgressCmd()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}

	// Nothing is on screen until mounted, so there is nothing to interact with.
	if !m.state.Mounted {
		return m, nil
	}

	switch msg := msg.(type) {
	case ToggleThemeMsg:
		m.toggleTheme()
		return m, nil

	case ToggleCaseOptionsMsg:
		m.toggleCaseOptions()
		return m, nil

	case StartGameMsg:
		return m, m.StartGame(msg.Mode)

	case OpenLinkMsg:
		return m, m.navigate(msg.Path)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.clampScroll()
	case key.Matches(msg, m.keys.FocusNext):
		m.focus = cycleFocus(m.focus, m.state.ShowCaseOptions, 1)
	case key.Matches(msg, m.keys.FocusPrev):
		m.focus = cycleFocus(m.focus, m.state.ShowCaseOptions, -1)
	case key.Matches(msg, m.keys.Activate):
		return m.activate(m.focus)
	case key.Matches(msg, m.keys.ScrollUp):
		m.scrollBy(-scrollStep)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scrollBy(scrollStep)
	case key.Matches(msg, m.keys.NewCase):
		m.toggleCaseOptions()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Quick):
		return m, m.StartGame(game.ModeQuick)
	case key.Matches(msg, m.keys.Standard):
		return m, m.StartGame(game.ModeStandard)
	case key.Matches(msg, m.keys.Complex):
		return m, m.StartGame(game.ModeComplex)
	case key.Matches(msg, m.keys.Admin):
		return m, m.navigate(game.AdminPath)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(1)
		return m, nil
	}

	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for _, ctrl := range visibleControls(m.state.ShowCaseOptions) {
		if zi := m.zones.Get(m.zoneID(ctrl)); zi != nil && zi.InBounds(msg) {
			m.focus = ctrl
			return m.activate(ctrl)
		}
	}
	return m, nil
}

// activate performs a control's click action.
func (m Model) activate(ctrl Control) (tea.Model, tea.Cmd) {
	switch ctrl {
	case ControlLogo:
		return m, m.navigate(game.HomePath)
	case ControlNewCase:
		m.toggleCaseOptions()
		return m, nil
	case ControlAdmin:
		return m, m.navigate(game.AdminPath)
	case ControlThemeToggle:
		m.toggleTheme()
		return m, nil
	}

	if mode, ok := ctrl.Mode(); ok {
		return m, m.StartGame(mode)
	}
	return m, nil
}

// StartGame returns the command that asks the router for a new case of the
// given mode. It changes no state; unknown modes produce no command.
func (m Model) StartGame(mode game.Mode) tea.Cmd {
	if !mode.Valid() {
		return nil
	}
	return m.navigate(game.Route(mode))
}

// navigate dispatches path to the navigator without waiting on the outcome.
func (m Model) navigate(path string) tea.Cmd {
	nav, log := m.nav, m.log
	return func() tea.Msg {
		log.Debug("navigate", "path", path)
		nav.Navigate(path)
		return nil
	}
}

func (m *Model) toggleTheme() {
	m.state.ToggleTheme()
	m.log.Debug("theme toggled", "theme", m.state.Theme.String())
}

func (m *Model) toggleCaseOptions() {
	m.state.ToggleCaseOptions()
	if !m.state.ShowCaseOptions && m.focus.InDropdown() {
		m.focus = ControlNewCase
	}
	m.log.Debug("case options toggled", "open", m.state.ShowCaseOptions)
	m.clampScroll()
}

func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	limit := maxScroll(m.content(), theme.NewStyles(theme.For(m.state.Theme)))
	m.scroll = min(max(m.scroll, 0), limit)
}

func (m Model) zoneID(ctrl Control) string {
	return m.zonePrefix + ctrl.String()
}

func (m Model) content() Content {
	return Content{
		Layout:        m.layout,
		ProgressLabel: m.progressLabel,
		Focus:         m.focus,
		Scroll:        m.scroll,
		Keys:          m.keys,
		ShowFullHelp:  m.showHelp,
		Mark: func(c Control, s string) string {
			return m.zones.Mark(m.zoneID(c), s)
		},
	}
}

// View renders the landing screen. It is empty until mounted.
func (m Model) View() string {
	out := Render(m.state.ViewState(), m.content())
	if out == "" {
		return ""
	}
	return m.zones.Scan(out)
}

// State returns the current UI state.
func (m Model) State() State {
	return m.state
}

// ProgressLabel returns the label shown next to "New Case".
func (m Model) ProgressLabel() string {
	return m.progressLabel
}

// Focused returns the control with keyboard focus.
func (m Model) Focused() Control {
	return m.focus
}
