package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronkov/cartage/internal/config"
	"github.com/avoronkov/cartage/internal/core"
	"github.com/avoronkov/cartage/internal/ecs"
	"github.com/avoronkov/cartage/internal/registry"
	"github.com/avoronkov/cartage/internal/storage"
)

// Model is the Bubble Tea model that runs one cart. It owns the host
// side of the frame contract: init once at boot, then one update and
// one draw per tick, in that order.
type Model struct {
	cart     registry.Cart
	director *ecs.Director
	screen   *core.Screen
	store    *storage.Store
	config   core.RuntimeConfig
	keymap   Keymap
	input    core.InputFrame

	status     registry.Status
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel boots the cart and creates a Bubble Tea model for it.
func NewModel(cart registry.Cart, store *storage.Store, cfg core.RuntimeConfig, keys config.KeysConfig) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	director, err := cart.Boot(cfg)
	if err != nil {
		return Model{}, err
	}
	if err := director.Init(); err != nil {
		return Model{}, err
	}

	return Model{
		cart:     cart,
		director: director,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		keymap:   NewKeymap(keys),
		input:    core.NewInputFrame(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick()
	}

	// The console has a fixed logical resolution, so window resizes
	// are ignored rather than rescaling the simulation.
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	case "r":
		if m.status.GameOver {
			return m.restart()
		}
	}

	if b, ok := m.keymap.Button(msg.String()); ok {
		m.input.Press(b)
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.status.GameOver {
		// Freeze the simulation on the game-over card; only the
		// restart and quit keys matter now.
		m.input.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.director.Update(m.input)
	m.status = m.cart.Status()

	// Save score on game over (once)
	if m.status.GameOver && !m.scoreSaved {
		m.saveScore()
	}

	// Clear input for next frame
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart re-boots the cart with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()

	director, err := m.cart.Boot(m.config)
	if err != nil {
		m.quitting = true
		return m, tea.Quit
	}
	if err := director.Init(); err != nil {
		m.quitting = true
		return m, tea.Quit
	}

	m.director = director
	m.status = registry.Status{}
	m.scoreSaved = false
	m.input.Clear()
	return m, nil
}

// saveScore persists the current score, best effort.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil {
		return
	}
	st := m.cart.Status()
	if st.Score > 0 {
		//nolint:errcheck // Best-effort save, play continues regardless
		m.store.SaveScore(m.cart.ID(), st.Score)
	}
	m.scoreSaved = true
}

// View renders the current frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.director.Draw(m.screen)

	if m.status.GameOver {
		m.screen.DrawTextCentered(m.screen.Height()/2, " GAME OVER ", core.ColorRed)
		m.screen.DrawTextCentered(m.screen.Height()/2+1, " R TO RESTART, Q TO QUIT ", core.ColorWhite)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a cart.
func Run(cart registry.Cart, store *storage.Store, cfg core.RuntimeConfig, keys config.KeysConfig) error {
	model, err := NewModel(cart, store, cfg, keys)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
