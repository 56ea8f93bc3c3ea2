package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for board generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves    int  // Clicks that popped at least one bubble
	Left     int  // Bubbles still on the board
	Cleared  bool // Board has no bubbles left
	Paused   bool // Input handling is frozen
	Hovering bool // Pointer rests over a poppable bubble
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Popped int   // Bubbles removed during this tick (0 when no pop happened)
	Cell   Point // Board cell the pop started from, valid when Popped > 0
	Color  int   // Palette index of the popped group, valid when Popped > 0
}
