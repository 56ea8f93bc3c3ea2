package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pop-bubble/internal/core"
	"github.com/vovakirdan/pop-bubble/internal/registry"
)

// MenuItem represents a selectable board variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// menuStyles holds the menu's lipgloss styles, built from one renderer.
type menuStyles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
}

func newMenuStyles(r *lipgloss.Renderer) menuStyles {
	return menuStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffc0cb")),
		subtitle: r.NewStyle().Foreground(lipgloss.Color(core.ColorGray)),
		item:     r.NewStyle().Foreground(lipgloss.Color(core.ColorWhite)),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorHint)),
	}
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	styles    menuStyles
	quitting  bool
	selected  *MenuItem // Set when user selects a variant
}

// NewMenuModel creates a new menu model. A nil painter uses the default
// renderer.
func NewMenuModel(cfg core.RuntimeConfig, painter *Painter) MenuModel {
	if painter == nil {
		painter = NewPainter(nil)
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
		})
	}

	// Start on the classic board when it is registered
	cursor := 0
	for i, item := range items {
		if item.GameID == "classic" {
			cursor = i
		}
	}

	h := help.New()
	h.ShowAll = false

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		styles:    newMenuStyles(painter.Renderer()),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		return m.selectCurrent()
	}

	return m, nil
}

// handleMouse lets a click on a list entry pick it.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	i := msg.Y - m.listTop()
	if i < 0 || i >= len(m.items) {
		return m, nil
	}
	m.cursor = i
	return m.selectCurrent()
}

func (m MenuModel) selectCurrent() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	selected := m.items[m.cursor]
	m.selected = &selected
	return m, tea.Quit // Exit menu to start game
}

// listTop is the screen row of the first menu entry.
func (m MenuModel) listTop() int {
	return 5
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.title.Render("P O P - B U B B L E"), m.width))
	b.WriteString("\n\n")

	// Subtitle
	b.WriteString(centerText(m.styles.subtitle.Render("Pick a board"), m.width))
	b.WriteString("\n\n")

	// Variant list
	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		style := m.styles.item
		if i == m.cursor {
			line = fmt.Sprintf("● %s", item.Title)
			style = m.styles.selected
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keyMapper.Menu.ShortHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.GameID = m.Selected().GameID
	return result, nil
}
