package bubble

import (
	"testing"

	"github.com/vovakirdan/pop-bubble/internal/config"
	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/registry"
)

// newTestGame creates a 3x3 board of 4x2 cells on a 20x12 screen, which puts
// the board origin at (4, 3).
func newTestGame(t *testing.T, rows ...string) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Board = config.BoardConfig{Width: 3, Height: 3}
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 12, TickRate: 60, Seed: 1})
	if len(rows) > 0 {
		setBoard(t, g, rows...)
	}
	return g
}

func setBoard(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	b, err := ParseBoard(rows)
	if err != nil {
		t.Fatal(err)
	}
	if b.W != g.place.Cols || b.H != g.place.Rows {
		t.Fatalf("board %dx%d does not match placement %dx%d", b.W, b.H, g.place.Cols, g.place.Rows)
	}
	g.board = b
	g.hoverMask = make([]bool, len(b.Cells))
}

// clickAt returns a frame with a click on the top-left character of a cell.
func clickAt(g *Game, x, y int) core.InputFrame {
	frame := core.NewInputFrame()
	r := g.place.CellRect(x, y)
	frame.Pointer.Click(r.X, r.Y)
	return frame
}

func TestResetDealsFullBoard(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})

	state := g.State()
	if state.Left != 100 || state.Moves != 0 || state.Cleared || state.Paused {
		t.Errorf("unexpected initial state: %+v", state)
	}
	if g.Placement().OriginX != 20 || g.Placement().OriginY != 2 {
		t.Errorf("board should be centered, origin = (%d, %d)", g.Placement().OriginX, g.Placement().OriginY)
	}
}

func TestClickPopsAndAppliesGravity(t *testing.T) {
	g := newTestGame(t,
		"121",
		"112",
		"232",
	)

	result := g.Step(clickAt(g, 0, 1))

	want := MustParseBoard(
		"..1",
		".22",
		"232",
	)
	if !g.Board().Equal(want) {
		t.Errorf("board after click:\n%s\nexpected:\n%s", RenderGrid(g.Board()), RenderGrid(want))
	}
	if result.Popped != 3 {
		t.Errorf("Popped = %d, expected 3", result.Popped)
	}
	if result.Cell != (core.Point{X: 0, Y: 1}) || result.Color != 1 {
		t.Errorf("pop event = cell %v color %d", result.Cell, result.Color)
	}
	if result.State.Moves != 1 || result.State.Left != 6 {
		t.Errorf("state after click: %+v", result.State)
	}
}

func TestClickConsumedOnce(t *testing.T) {
	g := newTestGame(t,
		"111",
		"222",
		"333",
	)

	frame := clickAt(g, 0, 2)
	if r := g.Step(frame); r.Popped != 3 {
		t.Fatalf("first tick should pop the bottom row, popped %d", r.Popped)
	}
	frame.Clear()

	// The rows fell: the click position now holds the 2s, which must stay.
	if r := g.Step(frame); r.Popped != 0 {
		t.Errorf("consumed click popped again: %d", r.Popped)
	}
	if g.State().Moves != 1 {
		t.Errorf("Moves = %d, expected 1", g.State().Moves)
	}
}

func TestLastClickWins(t *testing.T) {
	g := newTestGame(t,
		"123",
		"123",
		"123",
	)

	frame := core.NewInputFrame()
	first := g.place.CellRect(0, 0)
	second := g.place.CellRect(2, 0)
	frame.Pointer.Click(first.X, first.Y)
	frame.Pointer.Click(second.X, second.Y)

	g.Step(frame)

	if g.Board().At(0, 2) != 1 {
		t.Error("first click should have been overwritten")
	}
	if g.Board().At(2, 2) != Empty {
		t.Error("second click should have popped column 2")
	}
}

func TestIgnoredClicks(t *testing.T) {
	rows := []string{
		"...",
		"1..",
		"12.",
	}

	tests := []struct {
		name   string
		sx, sy int
	}{
		{"left of board", 3, 5},
		{"above board", 6, 2},
		{"far edge corner", 16, 9},
		{"one past far edge", 17, 5},
		{"empty cell", 12, 3},
		{"empty cell bottom right", 15, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, rows...)
			before := g.Board().Clone()

			frame := core.NewInputFrame()
			frame.Pointer.Click(tt.sx, tt.sy)
			r := g.Step(frame)

			if r.Popped != 0 || !g.Board().Equal(before) || g.State().Moves != 0 {
				t.Errorf("click at (%d, %d) should be ignored, popped %d", tt.sx, tt.sy, r.Popped)
			}
		})
	}
}

func TestHover(t *testing.T) {
	g := newTestGame(t,
		"...",
		"11.",
		"12.",
	)

	frame := core.NewInputFrame()
	r := g.place.CellRect(0, 2)
	frame.Pointer.Move(r.X+1, r.Y+1)
	if !g.Step(frame).State.Hovering {
		t.Error("pointer over a bubble should hover")
	}
	if !g.hoverMask[g.board.index(1, 1)] || g.hoverMask[g.board.index(1, 2)] {
		t.Error("hover should mark the whole group and nothing else")
	}

	r = g.place.CellRect(2, 0)
	frame.Pointer.Move(r.X, r.Y)
	if g.Step(frame).State.Hovering {
		t.Error("pointer over an empty cell should not hover")
	}

	frame.Pointer.Move(0, 0)
	if g.Step(frame).State.Hovering {
		t.Error("pointer off the board should not hover")
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 9})
	before := g.Board().Clone()

	g.Resize(120, 40)

	if !g.Board().Equal(before) {
		t.Error("resize should not change the board")
	}
	if g.Placement().OriginX != 40 || g.Placement().OriginY != 10 {
		t.Errorf("origin after resize = (%d, %d), expected (40, 10)", g.Placement().OriginX, g.Placement().OriginY)
	}
}

func TestTooSmallIgnoresClicks(t *testing.T) {
	g := newTestGame(t,
		"111",
		"111",
		"111",
	)
	g.Resize(10, 6)

	if r := g.Step(clickAt(g, 1, 1)); r.Popped != 0 {
		t.Error("clicks should be ignored while the window is too small")
	}

	g.Resize(20, 12)
	if r := g.Step(clickAt(g, 1, 1)); r.Popped != 9 {
		t.Errorf("clicks should work again after growing, popped %d", r.Popped)
	}
}

func TestPauseFreezesInput(t *testing.T) {
	g := newTestGame(t,
		"111",
		"222",
		"333",
	)

	frame := core.NewInputFrame()
	frame.Set(core.ActionPause)
	if !g.Step(frame).State.Paused {
		t.Fatal("pause action should pause")
	}

	if r := g.Step(clickAt(g, 0, 0)); r.Popped != 0 {
		t.Error("clicks should be ignored while paused")
	}

	frame = clickAt(g, 0, 0)
	frame.Set(core.ActionPause)
	r := g.Step(frame)
	if r.State.Paused || r.Popped != 3 {
		t.Errorf("unpause and click in the same tick: paused=%v popped=%d", r.State.Paused, r.Popped)
	}
}

func TestRestartDealsNewBoard(t *testing.T) {
	g := newTestGame(t,
		"111",
		"111",
		"111",
	)
	g.Step(clickAt(g, 0, 0))
	if !g.State().Cleared {
		t.Fatal("board should be cleared")
	}

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	state := g.Step(frame).State

	if state.Cleared || state.Left != 9 || state.Moves != 0 {
		t.Errorf("restart should deal a full board: %+v", state)
	}
}

func TestDeterminism(t *testing.T) {
	play := func() []Snapshot {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 12345})
		var snaps []Snapshot
		frame := core.NewInputFrame()
		for i := 0; i < 30; i++ {
			frame.Pointer.Click(20+(i*7)%40, 2+(i*5)%20)
			g.Step(frame)
			frame.Clear()
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := play(), play()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestRegisteredVariants(t *testing.T) {
	tests := []struct {
		id       string
		w, h     int
		maxColor Color
	}{
		{"classic", 10, 10, 5},
		{"mini", 6, 6, 4},
		{"grand", 16, 12, 5},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			rg, err := registry.Create(tt.id)
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", tt.id, err)
			}
			rg.Reset(core.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 3})
			g := rg.(*Game)

			if g.Board().W != tt.w || g.Board().H != tt.h {
				t.Errorf("board is %dx%d, expected %dx%d", g.Board().W, g.Board().H, tt.w, tt.h)
			}
			for _, c := range g.Board().Cells {
				if c < 1 || c > tt.maxColor {
					t.Fatalf("color %d out of range 1..%d", c, tt.maxColor)
				}
			}
		})
	}
}
