package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

func fillForm(m Model, desc, start, end string) {
	m.form.inputs[formDescription].SetValue(desc)
	m.form.inputs[formStart].SetValue(start)
	m.form.inputs[formEnd].SetValue(end)
}

func TestTaskCreateFlow(t *testing.T) {
	m, db := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("a"))
	if !m.modal.Is(ModalTaskCreate) {
		t.Fatalf("expected create modal")
	}
	if got := m.form.inputs[formDate].Value(); got != "2026-10-19" {
		t.Fatalf("expected form dated today, got %q", got)
	}

	m, _ = update(t, m, keyRunes("W"))
	fillForm(m, "Write report", "09:00", "10:00")
	m.form.setFocus(formImportant)
	m, _ = update(t, m, keyRunes(" "))

	want := models.Task{
		Date:        "2026-10-19",
		Description: "Write report",
		StartTime:   "09:00",
		EndTime:     "10:00",
		Color:       config.DefaultTaskColor,
		Important:   true,
	}
	db.EXPECT().AddTask(gomock.Any(), want).Return(int64(1), nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal.IsOpen() {
		t.Fatalf("expected modal closed after save, err=%q", m.form.err)
	}
	if m.Message != "Task added" {
		t.Fatalf("unexpected message %q", m.Message)
	}
}

func TestTaskFormRejectsInvalidInput(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("a"))
	fillForm(m, "ab", "09:00", "10:00")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.modal.Is(ModalTaskCreate) {
		t.Fatalf("invalid task must keep the form open")
	}
	if !strings.Contains(m.form.err, "at least 3") {
		t.Fatalf("unexpected error %q", m.form.err)
	}

	fillForm(m, "Standup", "10:00", "09:00")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.form.err, "start must be before end") {
		t.Fatalf("unexpected error %q", m.form.err)
	}
}

func TestShortTaskNeedsConfirmation(t *testing.T) {
	m, db := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("a"))
	fillForm(m, "Quick call", "09:00", "09:03")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.form.shortPending || !m.modal.IsOpen() {
		t.Fatalf("expected short-task warning first")
	}

	db.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(int64(2), nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal.IsOpen() {
		t.Fatalf("second enter must save the short task")
	}
}

func TestShortTaskWarningResetsOnEdit(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("a"))
	fillForm(m, "Quick call", "09:00", "09:03")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, keyRunes("x"))
	if m.form.shortPending {
		t.Fatalf("typing must require a fresh confirmation")
	}
}

func TestTaskEditAndStoreError(t *testing.T) {
	existing := models.Task{ID: 7, Date: "2026-10-19", Description: "Review PR", StartTime: "11:00", EndTime: "12:00", Color: "#ff0000"}
	m, db := newTestModel(t, map[string][]models.Task{"2026-10-19": {existing}})

	m, _ = update(t, m, keyRunes("e"))
	if !m.modal.Is(ModalTaskEdit) || m.modal.TaskID() != 7 {
		t.Fatalf("expected edit modal for task 7")
	}
	if m.form.inputs[formDescription].Value() != "Review PR" {
		t.Fatalf("form not loaded from task")
	}

	edited := existing
	edited.EndTime = "12:30"
	m.form.inputs[formEnd].SetValue("12:30")
	db.EXPECT().UpdateTask(gomock.Any(), edited).Return(errors.New("disk full"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.modal.IsOpen() || !strings.Contains(m.form.err, "disk full") {
		t.Fatalf("store errors must stay in the form, got %q", m.form.err)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal.IsOpen() {
		t.Fatalf("esc must close the form")
	}
}

func TestDeleteConfirm(t *testing.T) {
	task := models.Task{ID: 3, Date: "2026-10-19", Description: "Old item", StartTime: "08:00", EndTime: "09:00"}
	m, db := newTestModel(t, map[string][]models.Task{"2026-10-19": {task}})

	m, _ = update(t, m, keyRunes("d"))
	if !m.modal.Is(ModalTaskDelete) {
		t.Fatalf("expected delete confirmation")
	}
	m, _ = update(t, m, keyRunes("n"))
	if m.modal.IsOpen() {
		t.Fatalf("n must cancel")
	}

	db.EXPECT().DeleteTask(gomock.Any(), int64(3)).Return(nil)
	m, _ = update(t, m, keyRunes("d"))
	m, _ = update(t, m, keyRunes("y"))
	if m.Message != "Task deleted" {
		t.Fatalf("unexpected message %q", m.Message)
	}
}

func TestEditWithoutTasksIsIgnored(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("e"))
	m, _ = update(t, m, keyRunes("d"))
	if m.modal.IsOpen() {
		t.Fatalf("edit and delete need a selected task")
	}
}

func TestSearchJumpsToTask(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Date: "2026-10-21", Description: "Alpha", StartTime: "08:00", EndTime: "09:00"},
		{ID: 2, Date: "2026-10-21", Description: "Report", StartTime: "10:00", EndTime: "11:00"},
	}
	m, db := newTestModel(t, map[string][]models.Task{"2026-10-21": tasks})

	m, _ = update(t, m, keyRunes("/"))
	if !m.modal.Is(ModalSearch) {
		t.Fatalf("expected search modal")
	}
	db.EXPECT().SearchTasks(gomock.Any(), util.ParseSearchQuery("r")).Return([]models.Task{tasks[1]}, nil)
	m, _ = update(t, m, keyRunes("r"))
	if len(m.search.Results) != 1 {
		t.Fatalf("expected one result, got %d", len(m.search.Results))
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal.IsOpen() {
		t.Fatalf("enter must close search")
	}
	if m.selectedDate() != "2026-10-21" || m.cursor != 1 {
		t.Fatalf("expected cursor on Report, got %s/%d", m.selectedDate(), m.cursor)
	}
}

func TestSetupAdjustsChoices(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(t, m, keyRunes("p"))

	m, _ = update(t, m, keyRunes("7"))
	if m.setup.rounds != 7 {
		t.Fatalf("digit must pick rounds, got %d", m.setup.rounds)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.setup.rounds != 1 {
		t.Fatalf("rounds must wrap past %d, got %d", config.MaxRounds, m.setup.rounds)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.setup.workMinutes() != 20 {
		t.Fatalf("expected 20 minute work, got %d", m.setup.workMinutes())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.setup.breakMinutes() != 20 {
		t.Fatalf("break choice must wrap to 20, got %d", m.setup.breakMinutes())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modal.IsOpen() || m.focus != nil {
		t.Fatalf("esc must cancel without starting")
	}
}
