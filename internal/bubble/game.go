package bubble

import (
	"math/rand"

	"github.com/vovakirdan/pop-bubble/internal/config"
	"github.com/vovakirdan/pop-bubble/internal/core"
)

// Game is one Pop-Bubble session: the board, where it sits on the screen and
// the counters shown in the HUD.
type Game struct {
	variant Variant
	cfg     config.Config
	palette Palette
	rng     *rand.Rand
	tick    uint64

	board *Board
	place Placement

	// Screen dimensions
	screenW int
	screenH int

	moves    int
	paused   bool
	tooSmall bool

	// Hover is presentation only: which group would pop under the pointer.
	hovering  bool
	hoverCell Coord
	hoverMask []bool
}

// New creates a classic game using the current package configuration.
func New() *Game {
	return NewVariant(Variants[0])
}

// NewVariant creates a game for the given variant.
func NewVariant(v Variant) *Game {
	return &Game{variant: v}
}

// NewWithConfig creates a classic game with an explicit configuration,
// bypassing the package-level one.
func NewWithConfig(cfg config.Config) *Game {
	return &Game{
		variant: Variant{
			ID:    Variants[0].ID,
			Title: cfg.Title,
			Apply: func(c config.Config) config.Config { return c },
		},
		cfg: cfg,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset deals a fresh board from the seed and centers it on the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg.Palette == nil {
		g.cfg = g.variant.Apply(baseConfig)
	}
	palette, err := NewPalette(g.cfg.Palette)
	if err != nil {
		// Configs are validated on load; fall back rather than run without colors.
		g.cfg = g.variant.Apply(config.DefaultConfig())
		palette, _ = NewPalette(g.cfg.Palette)
	}
	g.palette = palette

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.deal()

	g.place = NewPlacement(g.cfg.Board.Width, g.cfg.Board.Height,
		g.cfg.Cell.Width, g.cfg.Cell.Height, cfg.ScreenW, cfg.ScreenH)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// deal replaces the board with a new random one and resets the counters.
func (g *Game) deal() {
	g.board = NewRandomBoard(g.cfg.Board.Width, g.cfg.Board.Height, g.palette.Size(), g.rng)
	g.moves = 0
	g.hovering = false
	g.hoverMask = make([]bool, len(g.board.Cells))
}

// Resize recenters the board for a new screen size. The board itself is
// left untouched.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.place.Center(w, h)
	g.checkScreenSize()
}

// checkScreenSize checks if the board, its frame and the HUD rows fit.
func (g *Game) checkScreenSize() {
	minW, minH := g.MinSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// MinSize returns the smallest screen that fits the board, its frame, the
// title row and the status row.
func (g *Game) MinSize() (int, int) {
	return g.place.Width() + 2, g.place.Height() + 4
}

// Step advances the game by one tick: it applies key actions, refreshes the
// hover state and resolves at most one pending click.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	result := core.StepResult{}

	if in.Has(core.ActionRestart) {
		g.deal()
		g.paused = false
		result.State = g.State()
		return result
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	g.updateHover(in.Pointer)

	if g.paused || g.tooSmall {
		result.State = g.State()
		return result
	}

	if click, ok := in.Pointer.PendingClick(); ok {
		if cell, ok := g.place.CellAt(click.X, click.Y); ok {
			color := g.board.At(cell.X, cell.Y)
			if color != Empty {
				n := Pop(g.board, cell.X, cell.Y)
				ApplyGravity(g.board)
				g.moves++
				result.Popped = n
				result.Cell = core.Point{X: cell.X, Y: cell.Y}
				result.Color = int(color)
				g.updateHover(in.Pointer)
			}
		}
	}

	result.State = g.State()
	return result
}

// updateHover recomputes which group lies under the pointer.
func (g *Game) updateHover(p core.PointerState) {
	for i := range g.hoverMask {
		g.hoverMask[i] = false
	}
	g.hovering = false
	if !p.Seen || g.tooSmall {
		return
	}

	cell, ok := g.place.CellAt(p.Pos.X, p.Pos.Y)
	if !ok || g.board.At(cell.X, cell.Y) == Empty {
		return
	}

	g.hovering = true
	g.hoverCell = cell
	for _, c := range Group(g.board, cell.X, cell.Y) {
		g.hoverMask[g.board.index(c.X, c.Y)] = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	left := 0
	if g.board != nil {
		left = g.board.Remaining()
	}
	return core.GameState{
		Moves:    g.moves,
		Left:     left,
		Cleared:  g.board != nil && left == 0,
		Paused:   g.paused,
		Hovering: g.hovering,
	}
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *Board {
	return g.board
}

// Placement returns where the board sits on the screen.
func (g *Game) Placement() Placement {
	return g.place
}
