package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pop-bubble/internal/core"
)

// stylePair identifies a cell style by its colors.
type stylePair struct {
	fg, bg core.Color
}

// Painter converts a Screen buffer into styled terminal output. Each Painter
// is bound to one lipgloss renderer, so SSH sessions get output matching the
// remote terminal's color profile.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[stylePair]lipgloss.Style
}

// NewPainter creates a painter for the given renderer. A nil renderer uses
// the process-wide default.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[stylePair]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer the painter draws with.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// style returns the cached style for a color pair.
func (p *Painter) style(key stylePair) lipgloss.Style {
	if s, ok := p.styles[key]; ok {
		return s
	}
	s := p.renderer.NewStyle()
	if key.fg.IsSet() {
		s = s.Foreground(lipgloss.Color(key.fg))
	}
	if key.bg.IsSet() {
		s = s.Background(lipgloss.Color(key.bg))
	}
	p.styles[key] = s
	return s
}

// Paint renders the screen to a string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := stylePair{fg: cell.FG, bg: cell.BG}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.FG != key.fg || cell.BG != key.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if !key.fg.IsSet() && !key.bg.IsSet() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders a screen with the default renderer.
func RenderScreen(s *core.Screen) string {
	return NewPainter(nil).Paint(s)
}
