package bubble

import "github.com/vovakirdan/pop-bubble/internal/core"

// ToCell maps a screen point to cell indices relative to a board whose
// top-left corner is at (ox, oy) and whose cells are cw by ch screen units.
// The result is only meaningful when InBounds holds for the same point.
func ToCell(sx, sy, ox, oy, cw, ch int) (int, int) {
	return (sx - ox) / cw, (sy - oy) / ch
}

// InBounds reports whether a screen point lies inside the closed rectangle
// [origin, origin+size] on both axes.
func InBounds(sx, sy, ox, oy, w, h int) bool {
	return core.NewRect(ox, oy, w, h).ContainsClosed(sx, sy)
}

// Placement positions a board on the screen.
type Placement struct {
	OriginX int // Screen column of the board's top-left corner
	OriginY int // Screen row of the board's top-left corner
	CellW   int // Cell width in screen columns
	CellH   int // Cell height in screen rows
	Cols    int // Board width in cells
	Rows    int // Board height in cells
}

// NewPlacement creates a placement for a cols x rows board centered in a
// viewW x viewH view.
func NewPlacement(cols, rows, cellW, cellH, viewW, viewH int) Placement {
	p := Placement{
		CellW: core.Max(cellW, 1),
		CellH: core.Max(cellH, 1),
		Cols:  cols,
		Rows:  rows,
	}
	p.Center(viewW, viewH)
	return p
}

// Width returns the board width in screen columns.
func (p Placement) Width() int {
	return p.Cols * p.CellW
}

// Height returns the board height in screen rows.
func (p Placement) Height() int {
	return p.Rows * p.CellH
}

// Rect returns the screen area covered by the board.
func (p Placement) Rect() core.Rect {
	return core.NewRect(p.OriginX, p.OriginY, p.Width(), p.Height())
}

// Center recomputes the origin so the board sits in the middle of the view.
// The origin may go negative when the view is smaller than the board.
func (p *Placement) Center(viewW, viewH int) {
	p.OriginX = (viewW - p.Width()) / 2
	p.OriginY = (viewH - p.Height()) / 2
}

// InBounds reports whether a screen point lies on the board, far edges
// included.
func (p Placement) InBounds(sx, sy int) bool {
	return InBounds(sx, sy, p.OriginX, p.OriginY, p.Width(), p.Height())
}

// ToCell translates a screen point into cell indices.
func (p Placement) ToCell(sx, sy int) (int, int) {
	return ToCell(sx, sy, p.OriginX, p.OriginY, p.CellW, p.CellH)
}

// CellAt resolves a screen point to a board cell. It returns false when the
// point is off the board or lands on the far edge, which translates to an
// index one past the last cell.
func (p Placement) CellAt(sx, sy int) (Coord, bool) {
	if !p.InBounds(sx, sy) {
		return Coord{}, false
	}
	x, y := p.ToCell(sx, sy)
	if x < 0 || x >= p.Cols || y < 0 || y >= p.Rows {
		return Coord{}, false
	}
	return Coord{X: x, Y: y}, true
}

// CellRect returns the screen area of cell (x, y).
func (p Placement) CellRect(x, y int) core.Rect {
	return core.NewRect(p.OriginX+x*p.CellW, p.OriginY+y*p.CellH, p.CellW, p.CellH)
}
