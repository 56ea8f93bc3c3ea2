package bubble

import (
	"fmt"

	"github.com/vovakirdan/pop-bubble/internal/core"
)

// Render draws the background, the framed board, the title and the status
// row. It reads game state only.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(core.ColorBlack)

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	dst.DrawTextStyled(2, 0, g.cfg.Title, core.ColorTitle)
	dst.DrawBox(g.place.Rect().Inset(-1), core.ColorGray)

	for y := 0; y < g.board.H; y++ {
		for x := 0; x < g.board.W; x++ {
			g.renderCell(dst, x, y)
		}
	}

	g.renderStatus(dst)

	if g.board.IsCleared() {
		g.renderCleared(dst)
	}
}

// renderCell paints one board cell. Each terminal cell carries two vertical
// pixels using the upper half block: the foreground is the top pixel and the
// background is the bottom one.
func (g *Game) renderCell(dst *core.Screen, x, y int) {
	r := g.place.CellRect(x, y)
	color := g.board.At(x, y)
	hovered := g.hoverMask[g.board.index(x, y)]
	empty := g.palette.Base(Empty)

	pixel := func(u, v float64) core.Color {
		if c, ok := g.palette.Shade(color, u, v, hovered); ok {
			return c
		}
		return empty
	}

	for cy := 0; cy < r.H; cy++ {
		for cx := 0; cx < r.W; cx++ {
			u := (float64(cx) + 0.5) / float64(r.W)
			top := pixel(u, (float64(2*cy)+0.5)/float64(2*r.H))
			bottom := pixel(u, (float64(2*cy)+1.5)/float64(2*r.H))

			cell := core.Cell{Rune: ' ', BG: empty}
			if top != empty || bottom != empty {
				cell = core.Cell{Rune: '▀', FG: top, BG: bottom}
			}
			dst.SetCell(r.X+cx, r.Y+cy, cell)
		}
	}
}

// renderStatus draws the move counter and hints on the last row.
func (g *Game) renderStatus(dst *core.Screen) {
	row := dst.Height() - 1
	state := g.State()

	status := fmt.Sprintf("Moves: %d  Bubbles: %d", state.Moves, state.Left)
	dst.DrawTextStyled(2, row, status, core.ColorWhite)

	x := 2 + len(status) + 3
	switch {
	case state.Paused:
		dst.DrawTextStyled(x, row, "PAUSED", core.ColorTitle)
	case state.Hovering:
		n := 0
		for _, h := range g.hoverMask {
			if h {
				n++
			}
		}
		dst.DrawTextStyled(x, row, fmt.Sprintf("click to pop %d", n), core.ColorHint)
	}
}

// renderCleared draws the end-of-board message over the empty board.
func (g *Game) renderCleared(dst *core.Screen) {
	_, cy := g.place.Rect().Center()
	dst.DrawTextCentered(cy-1, "Board cleared!", core.ColorTitle)
	dst.DrawTextCentered(cy+1, fmt.Sprintf("%d moves. Press n for a new board", g.moves), core.ColorDim)
}

// renderTooSmall explains how much room the board needs.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinSize()
	cy := dst.Height() / 2
	dst.DrawTextCentered(cy-1, "Window too small", core.ColorWhite)
	dst.DrawTextCentered(cy+1, fmt.Sprintf("need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorDim)
}
