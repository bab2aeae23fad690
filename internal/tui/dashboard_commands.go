package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// TickMsg drives the focus timer. Seq is the timer sequence the tick was
// scheduled for; ticks from an earlier session or a stopped one are dropped.
type TickMsg struct {
	Seq uint64
	At  time.Time
}

func tickCmd(interval time.Duration, seq uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg{Seq: seq, At: t} })
}

// clearMessageMsg clears the footer message if it is still the one shown.
type clearMessageMsg struct {
	text string
}

func clearMessageCmd(text string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg { return clearMessageMsg{text: text} })
}
