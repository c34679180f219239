package ui

import (
	"fmt"

	"boardpos/internal/layout"
	"boardpos/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Origin key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column -1")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column +1")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row +1")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row -1")),
		Origin: key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0", "origin")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Origin, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// InspectorModel lets the user walk the board and read each cell's
// coordinate.
type InspectorModel struct {
	table  *layout.Table
	styles Styles
	keys   keyMap
	help   help.Model

	col, row int
	quitting bool
}

// NewInspectorModel starts the cursor at the origin cell.
func NewInspectorModel(t *layout.Table, styles Styles) InspectorModel {
	return InspectorModel{
		table:  t,
		styles: styles,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			m.col--
		case key.Matches(msg, m.keys.Right):
			m.col++
		case key.Matches(msg, m.keys.Up):
			m.row++
		case key.Matches(msg, m.keys.Down):
			m.row--
		case key.Matches(msg, m.keys.Origin):
			m.col, m.row = 0, 0
		}
		m.clamp()
		logging.Get(logging.CategoryUI).Debugw("cursor", "col", m.col, "row", m.row)
	}
	return m, nil
}

func (m *InspectorModel) clamp() {
	m.col = max(0, min(m.col, m.table.Columns()-1))
	m.row = max(0, min(m.row, m.table.Rows()-1))
}

// Selected returns the cursor cell and its coordinate.
func (m InspectorModel) Selected() (col, row int, c layout.Coordinate) {
	return m.col, m.row, m.table.At(m.col, m.row)
}

// View implements tea.Model.
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}
	col, row, c := m.Selected()
	kind := "field"
	if IsRail(col, m.table.Columns()) {
		kind = "rail"
	}
	status := m.styles.Status.Render(fmt.Sprintf("[%d][%d] %s  x=%.3f  y=%.3f", col, row, kind, c.X, c.Y))
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderGrid(m.table, m.styles, &[2]int{col, row}),
		status,
		m.help.View(m.keys),
	)
}
