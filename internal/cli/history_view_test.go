package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nvquaan/con-bo-cham-chi/internal/attendance"
	"github.com/nvquaan/con-bo-cham-chi/internal/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeEntries(n int) []history.Entry {
	created := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	entries := make([]history.Entry, n)
	for i := range entries {
		p := attendance.NewPayload("BO-9988", attendance.CheckIn, "2024-03-05", fmt.Sprintf("08:%02d:00", 13+i))
		errMsg := ""
		if i%2 == 1 {
			errMsg = "HTTP 500: server rejected the submission"
		}
		entries[i] = history.NewEntry(p, created.Add(time.Duration(i)*time.Minute), errMsg)
	}
	return entries
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPadRightHistory(t *testing.T) {
	assert.Equal(t, "abc   ", padRight("abc", 6))
	assert.Equal(t, "abcdef", padRight("abcdefgh", 6))
	assert.Equal(t, "      ", padRight("", 6))
}

func TestRenderHistoryTable(t *testing.T) {
	entries := makeEntries(3)

	out := renderHistoryTable(entries, 15, 0, len(entries), -1, false)

	assert.Contains(t, out, "History (3/15)")
	assert.Contains(t, out, "Attendance time")
	assert.Contains(t, out, "05-03-2024 08:13:00")
	assert.Contains(t, out, "HTTP 500")
	assert.NotContains(t, out, "q quit")
}

func TestRenderHistoryTableEmpty(t *testing.T) {
	out := renderHistoryTable(nil, 10, 0, 0, -1, false)
	assert.Contains(t, out, "History (0/10)")
	assert.Contains(t, out, "no attempts yet")
}

func TestHistoryModelNavigation(t *testing.T) {
	entries := makeEntries(10)
	var m tea.Model = historyModel{entries: entries, capacity: 15, termHeight: 9}

	// 4 visible rows; moving to the 6th entry scrolls.
	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	hm := m.(historyModel)
	assert.Equal(t, 5, hm.cursor)
	assert.Equal(t, 2, hm.scrollY)
	assert.Contains(t, hm.View(), entries[5].ID)
	assert.NotContains(t, hm.View(), entries[0].OccurredAt)

	m, _ = m.Update(keyMsg("g"))
	hm = m.(historyModel)
	assert.Equal(t, 0, hm.cursor)
	assert.Equal(t, 0, hm.scrollY)

	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.(historyModel).cursor)

	m, _ = m.Update(keyMsg("G"))
	assert.Equal(t, 9, m.(historyModel).cursor)
}

func TestHistoryModelQuit(t *testing.T) {
	m := historyModel{entries: makeEntries(1), capacity: 15, termHeight: 24}

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestHistoryModelResize(t *testing.T) {
	var m tea.Model = historyModel{entries: makeEntries(10), capacity: 15, termHeight: 40}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 7})

	hm := m.(historyModel)
	assert.Equal(t, 7, hm.termHeight)
	assert.Equal(t, 2, hm.visibleRows())
}

func TestShowHistoryNonTerminalFallsBack(t *testing.T) {
	buf := new(bytes.Buffer)
	err := showHistory(buf, makeEntries(2), 15)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "History (2/15)")
	assert.Equal(t, 2, strings.Count(buf.String(), "05-03-2024"))
}
