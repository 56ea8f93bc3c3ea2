package bubble

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Board    string // RenderCompact form
	Moves    int
	Left     int
	Paused   bool
	Hovering bool
	Hover    Coord // Cell under the pointer, valid when Hovering
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Board:    RenderCompact(g.board),
		Moves:    g.moves,
		Left:     g.board.Remaining(),
		Paused:   g.paused,
		Hovering: g.hovering,
		Hover:    g.hoverCell,
	}
}
