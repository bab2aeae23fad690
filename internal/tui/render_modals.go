package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/timeflow/internal/config"
)

func (m Model) renderModal() string {
	var body string
	switch m.modal.ActiveModal() {
	case ModalTaskCreate:
		body = m.renderTaskForm("New task")
	case ModalTaskEdit:
		body = m.renderTaskForm("Edit task")
	case ModalTaskDelete:
		body = m.renderDeleteConfirm()
	case ModalSetup:
		body = m.renderSetup()
	case ModalSearch:
		body = m.renderSearch()
	case ModalSettings:
		body = m.renderSettings()
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	return box.Render(body)
}

func (m Model) renderTaskForm(title string) string {
	f := m.form
	lines := []string{CurrentTheme.Header.Render(title), ""}
	for i := 0; i < formImportant; i++ {
		label := fmt.Sprintf("%-12s", formLabels[i])
		if i == f.focus {
			label = CurrentTheme.Focused.Render(label)
		}
		lines = append(lines, label+f.inputs[i].View())
	}
	check := "[ ]"
	if f.important {
		check = "[x]"
	}
	label := fmt.Sprintf("%-12s", formLabels[formImportant])
	if f.focus == formImportant {
		label = CurrentTheme.Focused.Render(label)
	}
	lines = append(lines, label+check)
	if f.err != "" {
		lines = append(lines, "", CurrentTheme.Error.Render(f.err))
	}
	lines = append(lines, "", CurrentTheme.Dim.Render("[tab] next field  [space] toggle  [enter] save  [esc] cancel"))
	return strings.Join(lines, "\n")
}

func (m Model) renderDeleteConfirm() string {
	desc := "this task"
	for _, t := range m.dayTasks() {
		if t.ID == m.modal.TaskID() {
			desc = fmt.Sprintf("%q", t.Description)
		}
	}
	return fmt.Sprintf("%s\n\nDelete %s?\n\n%s",
		CurrentTheme.Header.Render("Confirm"),
		truncate(desc, m.contentWidth()-10),
		CurrentTheme.Dim.Render("[y] delete  [n] cancel"))
}

func (m Model) renderSetup() string {
	s := m.setup
	rows := []struct {
		label string
		value string
	}{
		{"Rounds", fmt.Sprintf("%d", s.rounds)},
		{"Work", fmt.Sprintf("%d min", s.workMinutes())},
		{"Break", fmt.Sprintf("%d min", s.breakMinutes())},
	}
	lines := []string{CurrentTheme.Header.Render("Pomodoro setup"), ""}
	for i, row := range rows {
		text := fmt.Sprintf("%-8s < %s >", row.label, row.value)
		if i == s.field {
			text = CurrentTheme.Focused.Render("> " + text)
		} else {
			text = "  " + text
		}
		lines = append(lines, text)
	}
	lines = append(lines,
		"",
		CurrentTheme.Dim.Render(fmt.Sprintf("Long break %s every %d rounds.",
			FormatDuration(m.settings.LongBreak), m.settings.RoundsBeforeLongBreak)),
		CurrentTheme.Dim.Render("[up/down] field  [left/right] change  [enter] start  [esc] cancel"),
	)
	return strings.Join(lines, "\n")
}

func (m Model) renderSearch() string {
	lines := []string{CurrentTheme.Header.Render("Search"), CurrentTheme.Input.Render(m.search.Input.View()), ""}
	if len(m.search.Results) == 0 && strings.TrimSpace(m.search.Input.Value()) != "" {
		lines = append(lines, CurrentTheme.Dim.Render("No matches."))
	}
	width := m.contentWidth() - 6
	for i, t := range m.search.Results {
		prefix := "  "
		if i == m.search.Cursor {
			prefix = CurrentTheme.Focused.Render("> ")
		}
		lines = append(lines, prefix+truncate(fmt.Sprintf("%s %s-%s %s", t.Date, t.StartTime, t.EndTime, t.Description), width))
	}
	lines = append(lines, "", CurrentTheme.Dim.Render("[enter] jump  [esc] close"))
	return strings.Join(lines, "\n")
}

func (m Model) renderSettings() string {
	cfg := m.setup.timerConfig(m.settings)
	if m.focus != nil {
		cfg = m.focus.Config()
	}
	lines := []string{
		CurrentTheme.Header.Render("Current pomodoro settings"),
		"",
		fmt.Sprintf("Work:        %d min", int(cfg.Work.Minutes())),
		fmt.Sprintf("Break:       %d min", int(cfg.ShortBreak.Minutes())),
		fmt.Sprintf("Long break:  %d min", int(cfg.LongBreak.Minutes())),
		fmt.Sprintf("Long break every %d rounds", cfg.RoundsBeforeLongBreak),
		fmt.Sprintf("Theme:       %s", CurrentTheme.Name),
		fmt.Sprintf("Version:     %s", VersionLabel()),
		"",
		CurrentTheme.Dim.Render("Restart the pomodoro session to change these."),
		CurrentTheme.Dim.Render(fmt.Sprintf("Defaults live in %s.", config.ConfigFileName)),
	}
	return strings.Join(lines, "\n")
}
