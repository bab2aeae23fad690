package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
)

const (
	formDescription = iota
	formDate
	formStart
	formEnd
	formColor
	formImportant
	formFieldCount
)

var formLabels = [...]string{"Description", "Date", "Start", "End", "Color", "Important"}

// TaskForm edits one task. The important flag is a toggle, the rest are text
// inputs.
type TaskForm struct {
	inputs    [formImportant]textinput.Model
	important bool
	focus     int
	err       string
	// shortPending is set once the user was warned about a short task; the
	// next submit saves it.
	shortPending bool
}

func newTaskForm() *TaskForm {
	f := &TaskForm{}
	placeholders := [formImportant]string{"What needs doing?", models.DateLayout, "HH:MM", "HH:MM", config.DefaultTaskColor}
	limits := [formImportant]int{config.MaxDescriptionLength, 10, 5, 5, 7}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 40
		f.inputs[i] = ti
	}
	return f
}

// Load fills the form from t and focuses the description.
func (f *TaskForm) Load(t models.Task) {
	values := [formImportant]string{t.Description, t.Date, t.StartTime, t.EndTime, t.Color}
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
		f.inputs[i].CursorEnd()
	}
	f.important = t.Important
	f.err = ""
	f.shortPending = false
	f.setFocus(formDescription)
}

// Task builds a task from the current values.
func (f *TaskForm) Task(id int64) models.Task {
	color := strings.TrimSpace(f.inputs[formColor].Value())
	if color == "" {
		color = config.DefaultTaskColor
	}
	return models.Task{
		ID:          id,
		Description: strings.TrimSpace(f.inputs[formDescription].Value()),
		Date:        strings.TrimSpace(f.inputs[formDate].Value()),
		StartTime:   strings.TrimSpace(f.inputs[formStart].Value()),
		EndTime:     strings.TrimSpace(f.inputs[formEnd].Value()),
		Color:       color,
		Important:   f.important,
	}
}

func (f *TaskForm) setFocus(idx int) {
	f.focus = wrap(idx, formFieldCount)
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

func (f *TaskForm) next() { f.setFocus(f.focus + 1) }
func (f *TaskForm) prev() { f.setFocus(f.focus - 1) }

// Update routes a key to the focused field.
func (f *TaskForm) Update(msg tea.KeyMsg) tea.Cmd {
	f.shortPending = false
	if f.focus == formImportant {
		switch msg.String() {
		case " ", "x":
			f.important = !f.important
		case "y":
			f.important = true
		case "n":
			f.important = false
		}
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
