package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"selectlist/internal/config"
	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/selection"
	"selectlist/internal/ui/input"
	inputtypes "selectlist/internal/ui/input/types"
	"selectlist/internal/ui/logic"
	"selectlist/internal/ui/state"
	"selectlist/internal/ui/views"
)

// ReadyMarker is printed once the first frame is drawn when the model is built with WithReadyMarker
const ReadyMarker = "__READY__"

// chromeHeight is the number of terminal rows not available to the list
const chromeHeight = 9

// Option configures a Model
type Option func(*Model)

// WithReadyMarker makes the view emit ReadyMarker, for end-to-end tests
func WithReadyMarker() Option {
	return func(m *Model) {
		m.readyMarker = true
	}
}

// WithConfigure overrides how list rows are filled in
func WithConfigure(configure views.ConfigureFunc) Option {
	return func(m *Model) {
		m.renderer = views.NewRenderer(configure)
	}
}

// WithPager replaces the ov pager used for the report
func WithPager(pager Pager) Option {
	return func(m *Model) {
		m.pager = pager
	}
}

// Model represents the UI state
type Model struct {
	bus        eventbus.EventBus
	config     *config.Config
	state      *state.AppState
	controller *selection.Controller[domain.Person]

	width  int
	height int
	help   help.Model

	navigator    *logic.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	pager        Pager

	saveOnQuit  bool
	readyMarker bool
}

// NewModel creates a new UI model around a list controller
func NewModel(bus eventbus.EventBus, cfg *config.Config, controller *selection.Controller[domain.Person], opts ...Option) *Model {
	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        state.NewAppState(),
		controller:   controller,
		help:         help.New(),
		navigator:    logic.NewNavigator(),
		renderer:     views.NewRenderer(nil),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
		pager:        NewOvPager(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.syncNavigatorState()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	if setter, ok := m.pager.(interface{ SetProgram(*tea.Program) }); ok {
		setter.SetProgram(p)
	}
}

// Controller returns the list controller driven by this model
func (m *Model) Controller() *selection.Controller[domain.Person] {
	return m.controller
}

// SaveOnQuit reports whether the user left with a normal quit rather than a forced one
func (m *Model) SaveOnQuit() bool {
	return m.saveOnQuit
}

// State exposes the UI state, for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// syncNavigatorState updates the navigator with current model state
func (m *Model) syncNavigatorState() {
	m.navigator.UpdateState(
		m.state.Cursor,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		m.controller.Len(),
	)
	m.state.Cursor = m.navigator.Cursor()
	m.state.ViewportOffset = m.navigator.ViewportOffset()
}

func (m *Model) context() inputtypes.Context {
	return &input.ModelContext{State: m.state, Items: m.controller}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.state.ViewportHeight = max(msg.Height-chromeHeight, 1)
		m.syncNavigatorState()

	case tea.KeyMsg:
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				return m, nil
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m.context()) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		m.handleEvent(msg.Event)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("Report pager failed")
			m.state.SetError(fmt.Sprintf("Pager failed: %v", msg.err))
		}
	}

	return m, nil
}

// handleEvent reacts to domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.RedrawRequestedEvent:
		// Bubble Tea repaints after every Update, so a full redraw is just a count here
		m.state.Redraws++
		m.syncNavigatorState()
	case eventbus.ErrorEvent:
		m.state.SetError(e.Message)
	case eventbus.ConfigSavedEvent:
		m.state.SetStatus(fmt.Sprintf("Saved %s", e.Path))
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.syncNavigatorState()
		m.state.Cursor, m.state.ViewportOffset = m.navigator.Move(a.Direction)

	case inputtypes.ToggleAction:
		index := a.Index
		if index < 0 {
			index = m.state.Cursor
		}
		m.toggle(index)

	case inputtypes.SwitchSelectionModeAction:
		mode := m.controller.Mode().Other()
		m.controller.SetMode(mode)
		m.state.SetStatus(fmt.Sprintf("Switched to %s selection", mode))
		m.publish(eventbus.ModeChangedEvent{Mode: mode.String()})

	case inputtypes.ResetAction:
		m.controller.Replace(m.config.People())
		m.controller.SetMode(m.config.SelectionMode())
		m.syncNavigatorState()
		m.state.SetStatus("Selection reset")

	case inputtypes.StatusAction:
		m.state.SetStatus(a.Message)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.OpenReportAction:
		return m.showReport()

	case inputtypes.QuitAction:
		m.saveOnQuit = !a.Force
		return tea.Quit
	}

	return nil
}

// toggle applies a tap on index and reports the outcome in the status bar
func (m *Model) toggle(index int) {
	if err := m.controller.Toggle(index); err != nil {
		log.Warn().Err(err).Int("index", index).Msg("Toggle failed")
		m.state.SetError(err.Error())
		m.publish(eventbus.ErrorEvent{Message: err.Error(), Err: err})
		return
	}

	item, err := m.controller.Item(index)
	if err != nil {
		return
	}

	verb := "Deselected"
	if item.Selected {
		verb = "Selected"
	}
	m.state.SetStatus(fmt.Sprintf("%s %s (%s)", verb, item.Value.Name, humanize.Ordinal(index+1)))

	selected := len(m.controller.SelectedIndices())
	log.Debug().Int("index", index).Str("mode", m.controller.Mode().String()).Int("selected", selected).Msg("Toggled item")
	m.publish(eventbus.SelectionChangedEvent{
		Index:    index,
		Mode:     m.controller.Mode().String(),
		Selected: selected,
	})
}

// showReport renders the report now and pages it from a command, off the update loop
func (m *Model) showReport() tea.Cmd {
	list := m.renderer.List()
	content := list.RenderReport(m.config.Title, m.controller.Mode(), list.Rows(m.controller))
	pager := m.pager
	return func() tea.Msg {
		return pagerClosedMsg{err: pager.Show(content)}
	}
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// View renders the model
func (m *Model) View() string {
	start, end, above, below := m.navigator.VisibleRange()

	out := m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.config.Title,
		Mode:          m.controller.Mode(),
		Rows:          m.renderer.List().Rows(m.controller),
		Cursor:        m.state.Cursor,
		VisibleStart:  start,
		VisibleEnd:    end,
		MoreAbove:     above,
		MoreBelow:     below,
		StatusMessage: m.state.StatusMessage,
		StatusIsError: m.state.StatusIsError,
		Confirming:    m.inputHandler.CurrentMode() == inputtypes.ModeResetConfirm,
		ShowHelp:      m.state.ShowHelp,
		HelpModel:     m.help,
		Keys:          m.inputHandler.Keys(),
	})

	if m.readyMarker {
		out += "\n" + ReadyMarker
	}
	return out
}
