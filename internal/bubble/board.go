// Package bubble implements the Pop-Bubble puzzle: a grid of colored bubbles
// where clicking one removes its same-colored group and the rest fall down.
//
// Board mutation (Pop, ApplyGravity) and pointer translation (Placement) are
// pure functions over plain data so they can be tested without a terminal.
package bubble

import (
	"fmt"
	"math/rand"
)

// Color is a palette index. Index 0 (Empty) is reserved for "no bubble".
type Color uint8

// Empty marks a cell without a bubble.
const Empty Color = 0

// Coord is a cell position. Y grows downward; gravity pulls toward larger Y.
type Coord struct {
	X int
	Y int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board is a rectangular grid of color indices.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W     int
	H     int
	Cells []Color
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Board{
		W:     w,
		H:     h,
		Cells: make([]Color, w*h),
	}
}

// NewRandomBoard creates a full board where every cell holds a color chosen
// uniformly from 1..paletteSize-1. The result never contains Empty.
// paletteSize must be at least 2.
func NewRandomBoard(w, h, paletteSize int, rng *rand.Rand) *Board {
	b := NewBoard(w, h)
	colors := paletteSize - 1
	if colors < 1 {
		colors = 1
	}
	for i := range b.Cells {
		b.Cells[i] = Color(rng.Intn(colors) + 1)
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Board) index(x, y int) int {
	return y*b.W + x
}

// InBounds returns true if (x, y) is a cell of this board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the color at (x, y), or Empty when out of bounds.
func (b *Board) At(x, y int) Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.Cells[b.index(x, y)]
}

// Set stores a color at (x, y). Out-of-bounds writes are ignored.
func (b *Board) Set(x, y int, c Color) {
	if b.InBounds(x, y) {
		b.Cells[b.index(x, y)] = c
	}
}

// Column returns the colors of column x read top to bottom.
func (b *Board) Column(x int) []Color {
	col := make([]Color, b.H)
	for y := range col {
		col[y] = b.At(x, y)
	}
	return col
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Color, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		W:     b.W,
		H:     b.H,
		Cells: cells,
	}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.W != other.W || b.H != other.H {
		return false
	}
	for i, c := range b.Cells {
		if other.Cells[i] != c {
			return false
		}
	}
	return true
}

// Remaining returns the number of non-empty cells.
func (b *Board) Remaining() int {
	n := 0
	for _, c := range b.Cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// IsCleared returns true if every cell is empty.
func (b *Board) IsCleared() bool {
	return b.Remaining() == 0
}
