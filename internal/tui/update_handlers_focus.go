package tui

import (
	"log"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// startFocus starts a pomodoro session from the setup prompt and schedules
// its first tick.
func (m Model) startFocus() (Model, tea.Cmd) {
	if m.focus.Running() {
		m.stopFocus()
	}
	cfg := m.setup.timerConfig(m.settings)
	// One timer serves every session so its sequence keeps growing and ticks
	// from an earlier session can never match a later one.
	focus := m.focus
	if focus == nil {
		focus = newFocusSession(cfg)
	} else if err := focus.timer.SetConfig(cfg); err != nil {
		util.LogError("configure pomodoro", err)
		return m, m.setMessage("Cannot start: " + err.Error())
	}
	now := m.now()
	if err := focus.Start(m.setup.rounds, now); err != nil {
		util.LogError("start pomodoro", err)
		return m, m.setMessage("Cannot start: " + err.Error())
	}
	id, err := m.db.StartSession(m.ctx, cfg, m.setup.rounds, now)
	if err != nil {
		util.LogError("record session", err)
	}
	focus.sessionID = id
	m.focus = focus
	m.view = ViewFocus
	m.saveSetup()
	log.Printf("pomodoro started: %d rounds, %d/%d minutes", m.setup.rounds, m.setup.workMinutes(), m.setup.breakMinutes())
	return m, tickCmd(m.interval, focus.Sequence())
}

func (m *Model) saveSetup() {
	for key, value := range map[string]int{
		settingSetupRounds: m.setup.rounds,
		settingSetupWork:   m.setup.workMinutes(),
		settingSetupBreak:  m.setup.breakMinutes(),
	} {
		if err := m.db.SetSetting(m.ctx, key, strconv.Itoa(value)); err != nil {
			util.LogError("save setup", err)
		}
	}
}

// stopFocus stops the running session and closes its log record.
func (m *Model) stopFocus() {
	if !m.focus.Running() {
		return
	}
	m.focus.completed = m.focus.Stop()
	m.closeSession(false)
}

func (m *Model) closeSession(completed bool) {
	f := m.focus
	if f == nil || f.sessionID == "" {
		return
	}
	status := models.SessionStopped
	if completed {
		status = models.SessionCompleted
	}
	if err := m.db.FinishSession(m.ctx, f.sessionID, status, f.completed, m.now()); err != nil {
		util.LogError("close session", err)
	}
	f.sessionID = ""
}
