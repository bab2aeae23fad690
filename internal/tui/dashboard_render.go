package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/util"
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.modal.IsOpen() {
		b.WriteString(m.renderModal())
	} else {
		switch m.view {
		case ViewWeek:
			b.WriteString(m.renderWeek())
		case ViewFocus:
			b.WriteString(m.renderFocus())
		default:
			b.WriteString(m.renderDay())
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return CurrentTheme.Base.Render(b.String())
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return max(m.width-4, config.MinColumnWidth)
}

func (m Model) renderHeader() string {
	title := CurrentTheme.Header.Render(strings.ToUpper(config.AppName))
	date := m.week[m.dayIdx].Format("Monday, 02 Jan 2006")

	tabs := []string{"1 Day", "2 Week"}
	if m.focus != nil {
		tabs = append(tabs, "p Focus")
	}
	active := map[ViewMode]int{ViewDay: 0, ViewWeek: 1, ViewFocus: 2}[m.view]
	for i, tab := range tabs {
		if i == active {
			tabs[i] = CurrentTheme.Focused.Render("[" + tab + "]")
		} else {
			tabs[i] = CurrentTheme.Dim.Render(" " + tab + " ")
		}
	}

	line := fmt.Sprintf("%s  %s  %s", title, date, strings.Join(tabs, ""))
	if m.view != ViewFocus && m.focus.Running() {
		line += "  " + m.renderTimerBadge()
	}
	return truncate(line, m.contentWidth())
}

func (m Model) renderTimerBadge() string {
	st := m.focus.timer.State()
	return phaseStyle(st.Phase).Render(fmt.Sprintf("● %s %s", st.Phase, util.FormatMMSS(st.RemainingSeconds)))
}

func (m Model) renderFooter() string {
	var lines []string
	if m.err != nil {
		lines = append(lines, CurrentTheme.Error.Render("Error: "+m.err.Error()))
	}
	if m.Message != "" {
		lines = append(lines, CurrentTheme.Highlight.Render(m.Message))
	}
	if !m.modal.IsOpen() {
		lines = append(lines, CurrentTheme.Dim.Render(truncate(m.keys.HelpForView(m.view), m.contentWidth())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
