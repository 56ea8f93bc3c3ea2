package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/pop-bubble/internal/bubble"
	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/session"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm, cmd
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	view := m.View()
	for _, title := range []string{"Pop-Bubble", "Pop-Bubble Mini", "Pop-Bubble Grand"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu should list %q", title)
		}
	}
	if m.items[m.cursor].GameID != "classic" {
		t.Errorf("cursor should start on classic, got %q", m.items[m.cursor].GameID)
	}
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	start := m.cursor

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != start+1 && start != len(m.items)-1 {
		t.Errorf("down should move the cursor, at %d", m.cursor)
	}
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != start {
		t.Errorf("up should move back, at %d", m.cursor)
	}

	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "classic" || cmd == nil {
		t.Errorf("enter should select classic, got %+v", m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	for i := 0; i < 10; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	if m.cursor != 0 {
		t.Errorf("cursor should stop at 0, got %d", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor should stop at the last item, got %d", m.cursor)
	}
}

func TestMenuClickSelects(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)

	m, _ = menuUpdate(t, m, tea.MouseMsg{X: 40, Y: m.listTop(), Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Selected() == nil || m.Selected().GameID != m.items[0].GameID {
		t.Errorf("click on the first row should select it, got %+v", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
	if m.View() != "" {
		t.Error("quitting menu should render nothing")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("selecting a variant should start a game")
	}
	if !strings.Contains(s.View(), "Moves: 0") {
		t.Error("session should render the game")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.InGame() {
		t.Error("esc should return to the menu")
	}
	if !strings.Contains(s.View(), "Pick a board") {
		t.Error("session should render the menu again")
	}

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s = next.(SessionModel)
	if cmd == nil || s.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionTracksBoard(t *testing.T) {
	reg := session.NewRegistry()
	id := reg.Open("alice", "127.0.0.1:2222")

	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil, nil).
		WithTracking(reg, id)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if info, _ := reg.Get(id); info.Board != "classic" {
		t.Errorf("Board = %q, expected classic", info.Board)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if info, _ := reg.Get(id); info.Board != "" {
		t.Errorf("Board = %q after leaving the game, expected empty", info.Board)
	}
}
