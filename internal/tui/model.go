package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// ViewMode selects the main pane.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
	ViewFocus
)

const (
	settingTheme       = "theme"
	settingSetupRounds = "setup.rounds"
	settingSetupWork   = "setup.work_minutes"
	settingSetupBreak  = "setup.break_minutes"
)

// Options configures a Model. Zero values fall back to defaults.
type Options struct {
	Settings     config.Settings
	Now          func() time.Time
	TickInterval time.Duration
	ReportDir    string
	ExportDir    string
}

// Model is the root bubbletea model: the weekly planner plus the focus timer.
type Model struct {
	ctx      context.Context
	db       Database
	settings config.Settings
	now      func() time.Time
	interval time.Duration

	view     ViewMode
	week     []time.Time
	dayIdx   int
	cursor   int
	tasks    map[string][]models.Task
	theme    string
	keys     *Keymap
	modal    *ModalManager
	form     *TaskForm
	setup    SetupState
	search   SearchManager
	focus    *FocusSession
	progress progress.Model

	reportDir string
	exportDir string

	err           error
	Message       string
	width, height int
}

func NewModel(ctx context.Context, db Database, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.Settings == (config.Settings{}) {
		opts.Settings = config.DefaultSettings()
	}

	si := textinput.New()
	si.Placeholder = "Search (date:YYYY-MM-DD is:important words)"
	si.Width = 50

	m := Model{
		ctx:       ctx,
		db:        db,
		settings:  opts.Settings,
		now:       opts.Now,
		interval:  opts.TickInterval,
		theme:     "default",
		modal:     newModalManager(),
		form:      newTaskForm(),
		search:    NewSearchManager(si),
		progress:  progress.New(progress.WithDefaultGradient()),
		reportDir: opts.ReportDir,
		exportDir: opts.ExportDir,
	}
	m.progress.Width = config.ProgressWidth
	m.keys = newKeymap()
	m.setup = newSetupState(opts.Settings)
	m.loadPreferences()
	m.refreshWeek()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// loadPreferences restores the theme and the last pomodoro setup.
func (m *Model) loadPreferences() {
	if name, ok, err := m.db.GetSetting(m.ctx, settingTheme); err == nil && ok && SetTheme(name) {
		m.theme = name
	} else {
		util.LogError("load theme", err)
		SetTheme(m.theme)
	}
	if v := m.intSetting(settingSetupRounds); v > 0 {
		m.setup.rounds = util.Clamp(v, 1, config.MaxRounds)
	}
	if v := m.intSetting(settingSetupWork); v > 0 {
		m.setup.workIdx = indexOf(config.WorkChoices, v, m.setup.workIdx)
	}
	if v := m.intSetting(settingSetupBreak); v > 0 {
		m.setup.breakIdx = indexOf(config.BreakChoices, v, m.setup.breakIdx)
	}
}

func (m *Model) intSetting(key string) int {
	raw, ok, err := m.db.GetSetting(m.ctx, key)
	if err != nil {
		util.LogError("load setting "+key, err)
		return 0
	}
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}

// refreshWeek recomputes the 7-day window from today and reloads its tasks.
func (m *Model) refreshWeek() {
	m.week = util.WeekDates(m.now(), config.WeekLength)
	m.dayIdx = util.Clamp(m.dayIdx, 0, len(m.week)-1)
	m.reloadTasks()
}

func (m *Model) reloadTasks() {
	tasks, err := m.db.TasksForDates(m.ctx, m.weekKeys())
	if err != nil {
		m.err = err
		util.LogError("load tasks", err)
		return
	}
	m.err = nil
	m.tasks = tasks
	m.cursor = util.Clamp(m.cursor, 0, max(len(m.dayTasks())-1, 0))
}

func (m Model) weekKeys() []string {
	return util.FormatDates(m.week, models.DateLayout)
}

func (m Model) selectedDate() string {
	return m.week[m.dayIdx].Format(models.DateLayout)
}

func (m Model) dayTasks() []models.Task {
	return m.tasks[m.selectedDate()]
}

func (m Model) selectedTask() (models.Task, bool) {
	tasks := m.dayTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.cursor], true
}

func indexOf(values []int, want, fallback int) int {
	for i, v := range values {
		if v == want {
			return i
		}
	}
	return fallback
}
