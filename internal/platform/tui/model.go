package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/registry"
)

// GameModel is the Bubble Tea model that drives one game: it feeds mouse and
// key events into an input frame, steps the game on every tick and paints the
// game's screen buffer.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	painter    *Painter
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone programs exit instead of returning to a menu
}

// NewGameModel creates a new game model. A nil painter uses the default
// renderer and a nil logger discards output.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, painter *Painter, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if painter == nil {
		painter = NewPainter(nil)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:    painter,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"screen", [2]int{m.config.ScreenW, m.config.ScreenH},
	)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleMouse records pointer events. They take effect on the next tick.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.inputFrame.Pointer.Click(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion, msg.Action == tea.MouseActionRelease:
		m.inputFrame.Pointer.Move(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize keeps the screen buffer and board placement in sync with the
// terminal. The board is not reset.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.logger.Info("new board", "game", m.game.ID())
	}

	wasCleared := m.gameState.Cleared
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Popped > 0 {
		m.logger.Debug("pop",
			"cell", [2]int{result.Cell.X, result.Cell.Y},
			"color", result.Color,
			"count", result.Popped,
			"left", result.State.Left,
		)
	}
	if m.gameState.Cleared && !wasCleared {
		m.logger.Info("board cleared", "game", m.game.ID(), "moves", m.gameState.Moves)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	m.drawHelp()

	return m.painter.Paint(m.screen)
}

// drawHelp puts the key hints on the right of the title row when they fit.
func (m GameModel) drawHelp() {
	text := plainHelp(m.keyMapper.Game.ShortHelp())
	x := m.screen.Width() - len([]rune(text)) - 2
	if x < 20 {
		return
	}
	m.screen.DrawTextStyled(x, 0, text, core.ColorDim)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local Bubble Tea program for the given game.
// It reports whether the player left with the back key rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := NewGameModel(game, cfg, nil, logger)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Motion events drive the hover state
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
