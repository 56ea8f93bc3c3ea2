package bubble

// neighbors lists the four orthogonal directions. Diagonals never connect.
var neighbors = [4]Coord{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// Pop removes the bubble at (x, y) together with every bubble of the same
// color reachable through orthogonal neighbors. It returns the number of
// cells cleared. A bubble with no matching neighbor still pops on its own.
//
// Cells are cleared as soon as they are discovered, so the board itself is the
// visited set and each cell is pushed at most once. The traversal uses an
// explicit stack, so board size does not bound call depth.
//
// Pop does nothing and returns 0 when (x, y) is outside the board or already
// empty. Callers should still check, since an empty click is a normal no-op.
func Pop(b *Board, x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}
	target := b.At(x, y)
	if target == Empty {
		return 0
	}

	b.Set(x, y, Empty)
	cleared := 1
	stack := []Coord{{X: x, Y: y}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbors {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !b.InBounds(nx, ny) || b.At(nx, ny) != target {
				continue
			}
			b.Set(nx, ny, Empty)
			cleared++
			stack = append(stack, Coord{X: nx, Y: ny})
		}
	}

	return cleared
}

// Group returns the cells Pop(b, x, y) would clear, without mutating b.
func Group(b *Board, x, y int) []Coord {
	if !b.InBounds(x, y) || b.At(x, y) == Empty {
		return nil
	}
	target := b.At(x, y)
	seen := make([]bool, len(b.Cells))
	seen[b.index(x, y)] = true
	group := []Coord{{X: x, Y: y}}

	for i := 0; i < len(group); i++ {
		cur := group[i]
		for _, d := range neighbors {
			nx, ny := cur.X+d.X, cur.Y+d.Y
			if !b.InBounds(nx, ny) || seen[b.index(nx, ny)] || b.At(nx, ny) != target {
				continue
			}
			seen[b.index(nx, ny)] = true
			group = append(group, Coord{X: nx, Y: ny})
		}
	}

	return group
}
