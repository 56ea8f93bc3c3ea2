package bubble

import (
	"math/rand"
	"testing"
)

func TestPopScenarios(t *testing.T) {
	tests := []struct {
		name    string
		board   []string
		x, y    int
		want    []string
		cleared int
	}{
		{
			name:    "singleton",
			board:   []string{"121", "212", "121"},
			x:       1,
			y:       1,
			want:    []string{"121", "2.2", "121"},
			cleared: 1,
		},
		{
			name:    "horizontal pair",
			board:   []string{"113", "234"},
			x:       0,
			y:       0,
			want:    []string{"..3", "234"},
			cleared: 2,
		},
		{
			name:    "diagonals do not connect",
			board:   []string{"12", "21"},
			x:       0,
			y:       0,
			want:    []string{".2", "21"},
			cleared: 1,
		},
		{
			name:    "ring with a hole",
			board:   []string{"111", "121", "111"},
			x:       2,
			y:       2,
			want:    []string{"...", ".2.", "..."},
			cleared: 8,
		},
		{
			name:    "snake through other colors",
			board:   []string{"1222", "1211", "1112"},
			x:       3,
			y:       1,
			want:    []string{".222", ".2..", "...2"},
			cleared: 7,
		},
		{
			name:    "whole board",
			board:   []string{"33", "33"},
			x:       1,
			y:       0,
			want:    []string{"..", ".."},
			cleared: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := MustParseBoard(tt.board...)
			n := Pop(b, tt.x, tt.y)
			want := MustParseBoard(tt.want...)
			if !b.Equal(want) {
				t.Errorf("after Pop(%d, %d):\n%s\nexpected:\n%s", tt.x, tt.y, RenderGrid(b), RenderGrid(want))
			}
			if n != tt.cleared {
				t.Errorf("Pop returned %d, expected %d", n, tt.cleared)
			}
		})
	}
}

func TestPopGuardsItself(t *testing.T) {
	b := MustParseBoard("1.", "22")
	before := b.Clone()

	if n := Pop(b, 1, 0); n != 0 {
		t.Errorf("Pop on empty cell returned %d", n)
	}
	if n := Pop(b, -1, 0); n != 0 {
		t.Errorf("Pop out of bounds returned %d", n)
	}
	if n := Pop(b, 2, 1); n != 0 {
		t.Errorf("Pop past the far edge returned %d", n)
	}
	if !b.Equal(before) {
		t.Error("guarded Pop calls should not change the board")
	}
}

// component computes the expected group with a plain recursive fill.
func component(b *Board, x, y int) map[Coord]bool {
	target := b.At(x, y)
	seen := make(map[Coord]bool)
	var visit func(x, y int)
	visit = func(x, y int) {
		c := Coord{X: x, Y: y}
		if !b.InBounds(x, y) || seen[c] || b.At(x, y) != target {
			return
		}
		seen[c] = true
		visit(x, y-1)
		visit(x, y+1)
		visit(x-1, y)
		visit(x+1, y)
	}
	visit(x, y)
	return seen
}

func TestPopClearsExactlyTheComponent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		b := NewRandomBoard(w, h, 2+rng.Intn(4), rng)
		// Knock some holes so the board is not always full.
		for j := 0; j < w*h/4; j++ {
			b.Set(rng.Intn(w), rng.Intn(h), Empty)
		}
		x, y := rng.Intn(w), rng.Intn(h)
		if b.At(x, y) == Empty {
			continue
		}

		before := b.Clone()
		group := component(before, x, y)
		n := Pop(b, x, y)

		if n != len(group) {
			t.Fatalf("case %d: Pop returned %d, component has %d cells", i, n, len(group))
		}
		for yy := 0; yy < h; yy++ {
			for xx := 0; xx < w; xx++ {
				c := Coord{X: xx, Y: yy}
				switch {
				case group[c] && b.At(xx, yy) != Empty:
					t.Fatalf("case %d: %v is in the group but was not cleared", i, c)
				case !group[c] && b.At(xx, yy) != before.At(xx, yy):
					t.Fatalf("case %d: %v is outside the group but changed", i, c)
				}
			}
		}
	}
}

func TestPopLargeBoardTerminates(t *testing.T) {
	// A single color fills the board: every cell is reachable.
	b := NewRandomBoard(100, 100, 2, rand.New(rand.NewSource(3)))
	if n := Pop(b, 50, 50); n != 100*100 {
		t.Errorf("Pop on a uniform 100x100 board cleared %d cells", n)
	}
	if !b.IsCleared() {
		t.Error("board should be cleared")
	}

	// Striped board: long winding paths, no cell visited twice.
	b = NewBoard(100, 100)
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			c := Color(1)
			if x%2 == 1 && y != 0 && y != 99 {
				c = 2
			}
			b.Set(x, y, c)
		}
	}
	want := b.Remaining() - 50*98
	if n := Pop(b, 0, 0); n != want {
		t.Errorf("Pop on striped board cleared %d cells, expected %d", n, want)
	}
}

func TestGroupMatchesPop(t *testing.T) {
	b := MustParseBoard(
		"1122",
		"1322",
		"1111",
	)
	group := Group(b, 0, 0)
	if len(group) != 7 {
		t.Fatalf("Group size = %d, expected 7", len(group))
	}
	if b.Remaining() != 12 {
		t.Error("Group should not mutate the board")
	}
	if n := Pop(b.Clone(), 0, 0); n != len(group) {
		t.Errorf("Pop cleared %d, Group reported %d", n, len(group))
	}
	if Group(b, 9, 9) != nil {
		t.Error("Group out of bounds should be nil")
	}
}
