package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nvquaan/con-bo-cham-chi/internal/history"
)

const (
	submittedColWidth = 8
	kindColWidth      = 9
	occurredColWidth  = 19
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// historyModel is a scrollable view over the session history, newest first.
type historyModel struct {
	entries    []history.Entry
	capacity   int
	cursor     int
	scrollY    int // first visible row
	termHeight int
}

func (m historyModel) Init() tea.Cmd {
	return nil
}

func (m historyModel) visibleRows() int {
	// title(1) + header(1) + separator(1) + footer(2)
	available := m.termHeight - 5
	if available < 1 {
		return 1
	}
	if available > len(m.entries) {
		return len(m.entries)
	}
	return available
}

func (m historyModel) ensureCursorVisible() historyModel {
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursor - m.visibleRows() + 1
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m = m.ensureCursorVisible()
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m = m.ensureCursorVisible()
			}
		case "home", "g":
			m.cursor = 0
			m = m.ensureCursorVisible()
		case "end", "G":
			if len(m.entries) > 0 {
				m.cursor = len(m.entries) - 1
				m = m.ensureCursorVisible()
			}
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	return renderHistoryTable(m.entries, m.capacity, m.scrollY, m.visibleRows(), m.cursor, true)
}

// renderHistoryTable draws rows [scrollY, scrollY+visible). cursor < 0 disables
// highlighting; withFooter adds the selected entry's details and key help.
func renderHistoryTable(entries []history.Entry, capacity, scrollY, visible, cursor int, withFooter bool) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("--- History (%d/%d) ---", len(entries), capacity)))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(padRight("Sent at", submittedColWidth)))
	b.WriteString(" | ")
	b.WriteString(headerStyle.Render(padRight("Kind", kindColWidth)))
	b.WriteString(" | ")
	b.WriteString(headerStyle.Render(padRight("Attendance time", occurredColWidth)))
	b.WriteString(" | ")
	b.WriteString(headerStyle.Render("Result"))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", submittedColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", kindColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", occurredColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", 6))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Silent("no attempts yet"))
		b.WriteString("\n")
	}

	end := scrollY + visible
	if end > len(entries) {
		end = len(entries)
	}
	for i := scrollY; i < end; i++ {
		e := entries[i]
		result := "ok"
		if !e.Succeeded() {
			result = e.Error
		}
		line := strings.Join([]string{
			padRight(e.CreatedAt.Format("15:04:05"), submittedColWidth),
			padRight(e.Kind.Label(), kindColWidth),
			padRight(e.OccurredAt, occurredColWidth),
			result,
		}, " | ")

		switch {
		case i == cursor:
			b.WriteString(selectedStyle.Render(line))
		case e.Succeeded():
			b.WriteString(line)
		default:
			b.WriteString(Error(line))
		}
		b.WriteString("\n")
	}

	if withFooter {
		b.WriteString("\n")
		if cursor >= 0 && cursor < len(entries) {
			b.WriteString(footerStyle.Render(fmt.Sprintf("id %s  user %s", entries[cursor].ID, entries[cursor].UserID)))
			b.WriteString("\n")
		}
		b.WriteString(footerStyle.Render("↑/↓ move  q quit"))
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// showHistory opens the interactive history view on a terminal and prints
// the static listing anywhere else.
func showHistory(w io.Writer, entries []history.Entry, capacity int) error {
	if !isTerminalWriter(w) {
		printHistory(w, entries, capacity)
		return nil
	}

	m := historyModel{entries: entries, capacity: capacity, termHeight: 24}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(w))
	_, err := p.Run()
	return err
}
