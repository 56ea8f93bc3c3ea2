package bubble

// ApplyGravity compacts every column so bubbles rest at the bottom with
// empties above them. The top-to-bottom order of bubbles within a column is
// preserved, and calling it again on the result changes nothing.
//
// Each column is scanned once from the second-to-last row upward. A bubble
// with an empty cell directly below moves to the lowest empty cell of its
// column. Everything below the current row is already compacted by then, so
// one pass is enough.
func ApplyGravity(b *Board) {
	for x := 0; x < b.W; x++ {
		for y := b.H - 2; y >= 0; y-- {
			c := b.At(x, y)
			if c == Empty || b.At(x, y+1) != Empty {
				continue
			}
			for land := b.H - 1; land > y; land-- {
				if b.At(x, land) == Empty {
					b.Set(x, land, c)
					b.Set(x, y, Empty)
					break
				}
			}
		}
	}
}
