package bubble

import (
	"fmt"
	"strings"
)

// colorChars are the characters used for color indices 1..35 in the text
// form of a board. Empty cells are '.'.
const colorChars = "123456789abcdefghijklmnopqrstuvwxyz"

// Char returns the text form of a color.
func (c Color) Char() rune {
	if c == Empty || int(c) > len(colorChars) {
		return '.'
	}
	return rune(colorChars[c-1])
}

// ParseColorChar converts a board character back to a color index.
func ParseColorChar(r rune) (Color, bool) {
	if r == '.' {
		return Empty, true
	}
	i := strings.IndexRune(colorChars, r)
	if i < 0 {
		return Empty, false
	}
	return Color(i + 1), true
}

// RenderGrid renders the board one row per line, each line ending with a
// newline.
func RenderGrid(b *Board) string {
	var sb strings.Builder
	for _, line := range GridToLines(b) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCompact renders the board as a single line (for hashing/comparison).
func RenderCompact(b *Board) string {
	return strings.Join(GridToLines(b), "")
}

// GridToLines returns one string per board row.
func GridToLines(b *Board) []string {
	lines := make([]string, b.H)
	row := make([]rune, b.W)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			row[x] = b.At(x, y).Char()
		}
		lines[y] = string(row)
	}
	return lines
}

// ParseBoard builds a board from its text form. All lines must have the same
// length; surrounding whitespace is ignored.
func ParseBoard(lines []string) (*Board, error) {
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("bubble: empty board")
	}

	w := len([]rune(rows[0]))
	b := NewBoard(w, len(rows))
	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("bubble: row %d has width %d, expected %d", y, len(runes), w)
		}
		for x, r := range runes {
			c, ok := ParseColorChar(r)
			if !ok {
				return nil, fmt.Errorf("bubble: row %d col %d: invalid cell %q", y, x, r)
			}
			b.Set(x, y, c)
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error. Intended for tests.
func MustParseBoard(lines ...string) *Board {
	b, err := ParseBoard(lines)
	if err != nil {
		panic(err)
	}
	return b
}
