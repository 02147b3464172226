// Package browse implements the interactive lesson picker: a cursor list of
// every registered lesson with a notes preview for the highlighted one.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/FelixChenT/go-learn-kimi/internal/config"
	"github.com/FelixChenT/go-learn-kimi/internal/lesson"
)

// previewLines caps how much of the notes the preview pane shows.
const previewLines = 6

// KeyMap defines the picker's keybindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard vim-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run lesson"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Styles holds the lipgloss styles for the picker.
type Styles struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Index    lipgloss.Style
	Preview  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles builds styles from the theme's color tokens.
func DefaultStyles(theme config.ThemeConfig) Styles {
	highlight := lipgloss.Color(theme.Highlight)
	subtle := lipgloss.Color(theme.Subtle)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Cursor:   lipgloss.NewStyle().Foreground(highlight),
		Selected: lipgloss.NewStyle().Foreground(highlight).Bold(true),
		Normal:   lipgloss.NewStyle(),
		Index:    lipgloss.NewStyle().Foreground(subtle),
		Preview:  lipgloss.NewStyle().Foreground(subtle).MarginTop(1),
		Help:     lipgloss.NewStyle().Foreground(subtle).MarginTop(1),
	}
}

// Model is the picker's bubbletea model.
type Model struct {
	entries []lesson.Entry
	cursor  int
	choice  *lesson.Entry
	keys    KeyMap
	styles  Styles
	width   int
}

// New builds a picker over the registry's entries.
func New(reg *lesson.Registry, theme config.ThemeConfig) Model {
	return Model{
		entries: reg.Entries(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(theme),
		width:   80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
		case key.Matches(msg, m.keys.Bottom):
			m.cursor = len(m.entries) - 1
		case key.Matches(msg, m.keys.Select):
			entry := m.entries[m.cursor]
			m.choice = &entry
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Go Lessons"))
	b.WriteString("\n")

	slugWidth := m.slugColumnWidth()
	for i, e := range m.entries {
		cursor := "  "
		rowStyle := m.styles.Normal
		if i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
			rowStyle = m.styles.Selected
		}
		row := fmt.Sprintf("%s %s  %s",
			m.styles.Index.Render(fmt.Sprintf("%2d", e.Index)),
			runewidth.FillRight(e.Slug, slugWidth),
			e.Title,
		)
		b.WriteString(cursor + rowStyle.Render(row) + "\n")
	}

	b.WriteString(m.styles.Preview.Render(m.previewText()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("↑/↓ move · g/G first/last · enter run · q quit"))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the entry selected with enter, or nil if the picker was
// cancelled.
func (m Model) Choice() *lesson.Entry {
	return m.choice
}

// Cursor returns the highlighted row, for tests.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) slugColumnWidth() int {
	widest := 0
	for _, e := range m.entries {
		if w := runewidth.StringWidth(e.Slug); w > widest {
			widest = w
		}
	}
	return widest
}

// previewText wraps the first few lines of the highlighted lesson's notes.
func (m Model) previewText() string {
	doc := strings.TrimSpace(m.entries[m.cursor].Doc)
	if doc == "" {
		return ""
	}
	wrapped := wordwrap.String(doc, max(20, m.width-4))
	lines := strings.Split(wrapped, "\n")
	if len(lines) > previewLines {
		lines = append(lines[:previewLines], "…")
	}
	return strings.Join(lines, "\n")
}
