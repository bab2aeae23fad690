package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

func (m Model) renderDay() string {
	tasks := m.dayTasks()
	if len(tasks) == 0 {
		return CurrentTheme.Dim.Render("No tasks for this day. Press [a] to add one.")
	}
	width := m.contentWidth()
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, renderTaskLine(t, i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func renderTaskLine(t models.Task, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = CurrentTheme.Focused.Render("> ")
	}
	flag := " "
	if t.Important {
		flag = CurrentTheme.Important.Render("!")
	}
	span := CurrentTheme.Dim.Render(fmt.Sprintf("%s-%s", t.StartTime, t.EndTime))
	desc := taskStyle(t).Render(t.Description)
	line := fmt.Sprintf("%s%s %s %s", marker, span, flag, desc)
	if t.IsShort(config.ShortTaskThreshold) {
		line += " " + CurrentTheme.Short.Render("(short)")
	}
	return truncate(line, width)
}

func taskStyle(t models.Task) lipgloss.Style {
	style := CurrentTheme.Task
	if t.Color != "" && t.Color != config.DefaultTaskColor {
		style = style.Foreground(lipgloss.Color(t.Color))
	}
	if t.Important {
		style = style.Bold(true)
	}
	return style
}

// renderWeek lays the seven days out as columns, or as a summary list when
// the terminal is too narrow.
func (m Model) renderWeek() string {
	width := m.contentWidth()
	if width < config.CompactModeThreshold {
		return m.renderWeekCompact()
	}
	colWidth := max(width/len(m.week)-1, config.MinColumnWidth)
	cols := make([]string, 0, len(m.week))
	for i, day := range m.week {
		key := day.Format(models.DateLayout)
		headStyle := CurrentTheme.Header
		if i != m.dayIdx {
			headStyle = CurrentTheme.Dim.Bold(true)
		}
		lines := []string{headStyle.Render(truncate(day.Format("Mon 02.01"), colWidth))}
		tasks := m.tasks[key]
		if len(tasks) == 0 {
			lines = append(lines, CurrentTheme.Dim.Render("-"))
		}
		for j, t := range tasks {
			text := t.StartTime + " " + t.Description
			style := taskStyle(t)
			if i == m.dayIdx && j == m.cursor {
				style = style.Reverse(true)
			}
			lines = append(lines, style.Render(truncate(text, colWidth)))
		}
		border := lipgloss.NewStyle().
			Width(colWidth).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(CurrentTheme.Border)
		cols = append(cols, border.Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderWeekCompact() string {
	lines := make([]string, 0, len(m.week))
	for i, day := range m.week {
		key := day.Format(models.DateLayout)
		text := fmt.Sprintf("%s  %d tasks", day.Format("Mon 02.01"), len(m.tasks[key]))
		if i == m.dayIdx {
			text = CurrentTheme.Focused.Render("> " + text)
		} else {
			text = "  " + text
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFocus() string {
	f := m.focus
	if f == nil {
		return CurrentTheme.Dim.Render("No pomodoro session. Press [p] to start one.")
	}
	st := f.timer.State()

	phase := "Idle"
	if st.Phase.Active() {
		phase = strings.ToUpper(strings.ReplaceAll(st.Phase.String(), "_", " "))
	}
	clock := CurrentTheme.Clock.Render(util.FormatMMSS(st.RemainingSeconds))
	rounds := FormatRounds(f.completed, f.total)

	lines := []string{
		phaseStyle(st.Phase).Render(phase),
		f.message,
		"",
		clock,
		"",
		m.progress.ViewAs(f.Progress()),
		CurrentTheme.Dim.Render(rounds),
		"",
		CurrentTheme.Highlight.Italic(true).Render(truncate(f.phrase, m.contentWidth())),
	}
	if f.finished {
		lines = append(lines, "", CurrentTheme.Focused.Render("Session finished. Press [p] for another."))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
