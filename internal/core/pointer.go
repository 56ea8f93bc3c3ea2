package core

// Point is a position in screen coordinates (terminal cells).
type Point struct {
	X, Y int
}

// PointerState is the pointer input shared between event handlers and the
// tick. Events write into it as they arrive; the tick reads it and consumes
// the click. There is at most one pending click: a second click before the
// next tick overwrites the first.
type PointerState struct {
	Pos      Point // Last observed pointer position
	Seen     bool  // Whether any pointer event has been observed yet
	clicked  bool
	clickPos Point
}

// Move records the latest pointer position.
func (p *PointerState) Move(x, y int) {
	p.Pos = Point{X: x, Y: y}
	p.Seen = true
}

// Click records a click at (x, y), replacing any unconsumed click.
// A click also counts as a pointer move.
func (p *PointerState) Click(x, y int) {
	p.Move(x, y)
	p.clicked = true
	p.clickPos = Point{X: x, Y: y}
}

// PendingClick returns the position of the unconsumed click, if any.
func (p PointerState) PendingClick() (Point, bool) {
	return p.clickPos, p.clicked
}

// ClearClick drops the pending click.
func (p *PointerState) ClearClick() {
	p.clicked = false
	p.clickPos = Point{}
}

// Consume returns the pending click and clears it in one step.
func (p *PointerState) Consume() (Point, bool) {
	pos, ok := p.PendingClick()
	p.ClearClick()
	return pos, ok
}
