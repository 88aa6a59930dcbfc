package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/autotetris/internal/core"
)

// helpHeight is the number of lines kept under the board for the help footer.
const helpHeight = 1

// Simulation is a self-driving game the spectator view can step and draw.
type Simulation interface {
	Reset(cfg core.RuntimeConfig)
	Step() core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Model is the Bubble Tea model for watching one autonomous run.
type Model struct {
	sim      Simulation
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	state    core.GameState
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given simulation.
func NewModel(sim Simulation, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sim:    sim,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init resets the simulation and starts the turn loop.
func (m Model) Init() tea.Cmd {
	m.sim.Reset(m.config)
	return tickCmd(m.config.TurnDelay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick plays one turn. Ticking stops once the run is over; the final
// board stays on screen until the viewer quits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.state.GameOver {
		return m, nil
	}
	m.state = m.sim.Step().State
	if m.state.GameOver {
		return m, nil
	}
	return m, tickCmd(m.config.TurnDelay)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the viewer asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given simulation and returns
// the final game state.
func Run(sim Simulation, cfg core.RuntimeConfig) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(sim, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return sim.State(), nil
}
