package tui

import (
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/report"
	"github.com/akyairhashvil/timeflow/internal/util"
)

var plannerViews = []ViewMode{ViewDay, ViewWeek}

func newKeymap() *Keymap {
	km := NewKeymap()
	bind := func(keys []string, help string, views []ViewMode, h KeyHandler) {
		km.Bind(KeyBinding{Keys: keys, Help: help, Views: views, Handler: h})
	}

	bind([]string{"q"}, "quit", nil, func(m Model, _ string) (Model, tea.Cmd, bool) {
		next, cmd := m.quit()
		return next, cmd, true
	})
	bind([]string{"1"}, "day", nil, switchView(ViewDay))
	bind([]string{"2"}, "week", nil, switchView(ViewWeek))
	bind([]string{"p"}, "pomodoro", nil, handlePomodoroKey)
	bind([]string{"/"}, "search", plannerViews, handleSearchOpen)
	bind([]string{"s"}, "settings", nil, func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.modal.Open(ModalSettings, 0)
		return m, nil, true
	})
	bind([]string{"t"}, "theme", nil, handleThemeToggle)
	bind([]string{"r"}, "report", plannerViews, handleReport)
	bind([]string{"ctrl+e"}, "export", plannerViews, handleExport)

	bind([]string{"a", "n"}, "add", plannerViews, handleTaskCreate)
	bind([]string{"e", "enter"}, "edit", plannerViews, handleTaskEdit)
	bind([]string{"d", "delete"}, "delete", plannerViews, handleTaskDeleteStart)
	bind([]string{"up", "k"}, "", plannerViews, moveCursor(-1))
	bind([]string{"down", "j"}, "", plannerViews, moveCursor(1))
	bind([]string{"left", "h"}, "", plannerViews, moveDay(-1))
	bind([]string{"right", "l"}, "", plannerViews, moveDay(1))
	bind([]string{"T"}, "today", plannerViews, func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.refreshWeek()
		m.dayIdx = 0
		m.cursor = 0
		return m, nil, true
	})

	bind([]string{"x"}, "stop", []ViewMode{ViewFocus}, func(m Model, _ string) (Model, tea.Cmd, bool) {
		if !m.focus.Running() {
			return m, nil, false
		}
		m.stopFocus()
		return m, m.setMessage("Pomodoro stopped"), true
	})
	bind([]string{"esc"}, "back", []ViewMode{ViewFocus}, switchView(ViewDay))
	return km
}

func switchView(view ViewMode) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		if view == ViewFocus && m.focus == nil {
			return m, nil, false
		}
		m.view = view
		return m, nil, true
	}
}

func moveCursor(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		n := len(m.dayTasks())
		if n == 0 {
			return m, nil, true
		}
		m.cursor = util.Clamp(m.cursor+delta, 0, n-1)
		return m, nil, true
	}
}

func moveDay(delta int) KeyHandler {
	return func(m Model, _ string) (Model, tea.Cmd, bool) {
		m.dayIdx = util.Clamp(m.dayIdx+delta, 0, len(m.week)-1)
		m.cursor = 0
		return m, nil, true
	}
}

// handlePomodoroKey shows the running session or opens the setup prompt.
func handlePomodoroKey(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.focus.Running() {
		m.view = ViewFocus
		return m, nil, true
	}
	m.setup.field = setupFieldRounds
	m.modal.Open(ModalSetup, 0)
	return m, nil, true
}

func handleThemeToggle(m Model, _ string) (Model, tea.Cmd, bool) {
	m.theme = nextThemeName(m.theme)
	SetTheme(m.theme)
	if err := m.db.SetSetting(m.ctx, settingTheme, m.theme); err != nil {
		util.LogError("save theme", err)
	}
	return m, m.setMessage("Theme: " + CurrentTheme.Name), true
}

func handleReport(m Model, _ string) (Model, tea.Cmd, bool) {
	dir := m.reportDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	path := filepath.Join(dir, report.DefaultFileName(m.week[0]))
	if err := report.Generate(m.ctx, m.db, m.week, path); err != nil {
		util.LogError("generate report", err)
		return m, m.setMessage("Report failed: " + err.Error()), true
	}
	log.Printf("report written to %s", path)
	return m, m.setMessage("Report saved: " + path), true
}

func handleExport(m Model, _ string) (Model, tea.Cmd, bool) {
	path, err := ExportData(m.ctx, m.db, m.exportDir, m.now())
	if err != nil {
		util.LogError("export", err)
		return m, m.setMessage("Export failed: " + err.Error()), true
	}
	return m, m.setMessage("Export saved: " + path), true
}

func handleTaskCreate(m Model, _ string) (Model, tea.Cmd, bool) {
	m.form.Load(models.Task{
		Date:  m.selectedDate(),
		Color: config.DefaultTaskColor,
	})
	m.modal.Open(ModalTaskCreate, 0)
	return m, nil, true
}

func handleTaskEdit(m Model, _ string) (Model, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, false
	}
	m.form.Load(task)
	m.modal.Open(ModalTaskEdit, task.ID)
	return m, nil, true
}

func handleTaskDeleteStart(m Model, _ string) (Model, tea.Cmd, bool) {
	task, ok := m.selectedTask()
	if !ok {
		return m, nil, false
	}
	m.modal.Open(ModalTaskDelete, task.ID)
	return m, nil, true
}

func handleSearchOpen(m Model, _ string) (Model, tea.Cmd, bool) {
	m.search.Reset()
	m.search.Input.Focus()
	m.modal.Open(ModalSearch, 0)
	return m, nil, true
}
