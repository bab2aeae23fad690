package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/util"
)

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal.Close()
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		return m.submitForm()
	}
	return m, m.form.Update(msg)
}

func (m Model) submitForm() (Model, tea.Cmd) {
	task := m.form.Task(m.modal.TaskID())
	if err := task.Validate(config.MinDescriptionLength, config.MaxDescriptionLength); err != nil {
		m.form.err = err.Error()
		return m, nil
	}
	if task.IsShort(config.ShortTaskThreshold) && !m.form.shortPending {
		m.form.shortPending = true
		m.form.err = fmt.Sprintf("Task is shorter than %s. Press enter again to save.", FormatDuration(config.ShortTaskThreshold))
		return m, nil
	}

	var err error
	verb := "added"
	if m.modal.Is(ModalTaskEdit) {
		verb = "updated"
		err = m.db.UpdateTask(m.ctx, task)
	} else {
		_, err = m.db.AddTask(m.ctx, task)
	}
	if err != nil {
		m.form.err = err.Error()
		m.form.shortPending = false
		return m, nil
	}

	m.modal.Close()
	m.reloadTasks()
	m.focusDate(task.Date)
	return m, m.setMessage("Task " + verb)
}

// focusDate selects date if it is inside the current week.
func (m *Model) focusDate(date string) {
	for i, key := range m.weekKeys() {
		if key == date {
			m.dayIdx = i
			m.cursor = 0
			return
		}
	}
}

func (m Model) handleDeleteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		id := m.modal.TaskID()
		m.modal.Close()
		if err := m.db.DeleteTask(m.ctx, id); err != nil {
			util.LogError("delete task", err)
			return m, m.setMessage("Delete failed: " + err.Error())
		}
		m.reloadTasks()
		return m, m.setMessage("Task deleted")
	case "n", "N", "esc", "q":
		m.modal.Close()
	}
	return m, nil
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.modal.Close()
	case "up", "k", "shift+tab":
		m.setup.moveField(-1)
	case "down", "j", "tab":
		m.setup.moveField(1)
	case "left", "h", "-":
		m.setup.adjust(-1)
	case "right", "l", "+":
		m.setup.adjust(1)
	case "enter":
		m.modal.Close()
		return m.startFocus()
	default:
		if n, err := strconv.Atoi(msg.String()); err == nil && m.setup.field == setupFieldRounds && n >= 1 && n <= config.MaxRounds {
			m.setup.rounds = n
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal.Close()
		m.search.Input.Blur()
		return m, nil
	case "up", "ctrl+k":
		m.search.Cursor = util.Clamp(m.search.Cursor-1, 0, max(len(m.search.Results)-1, 0))
		return m, nil
	case "down", "ctrl+j":
		m.search.Cursor = util.Clamp(m.search.Cursor+1, 0, max(len(m.search.Results)-1, 0))
		return m, nil
	case "enter":
		task, ok := m.search.Selected()
		if !ok {
			return m, nil
		}
		m.modal.Close()
		m.search.Input.Blur()
		before := m.dayIdx
		m.focusDate(task.Date)
		if m.selectedDate() != task.Date {
			m.dayIdx = before
			return m, m.setMessage("Task is outside this week: " + task.Date)
		}
		for i, t := range m.dayTasks() {
			if t.ID == task.ID {
				m.cursor = i
			}
		}
		m.view = ViewDay
		return m, nil
	}

	var cmd tea.Cmd
	m.search.Input, cmd = m.search.Input.Update(msg)
	query := util.ParseSearchQuery(m.search.Input.Value())
	if query.Empty() {
		m.search.Results = nil
		m.search.Cursor = 0
		return m, cmd
	}
	results, err := m.db.SearchTasks(m.ctx, query)
	if err != nil {
		m.err = err
		return m, cmd
	}
	m.search.Results = results
	m.search.Cursor = util.Clamp(m.search.Cursor, 0, max(len(results)-1, 0))
	return m, cmd
}

