package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
)

const messageTTL = 5 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case TickMsg:
		return m.handleTick(msg)
	case clearMessageMsg:
		if m.Message == msg.text {
			m.Message = ""
		}
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.progress.Update(msg)
		m.progress = next.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		if m.modal.IsOpen() {
			return m.handleModalKey(msg)
		}
		next, cmd, _ := m.keys.Handle(m, msg.String())
		return next, cmd
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	target := config.ProgressWidth
	if m.width > 0 && m.width < config.CompactModeThreshold {
		target = m.width / 2
	}
	m.progress.Width = target
	return m, nil
}

// handleTick advances the focus timer. Only ticks carrying the live sequence
// count; anything older belongs to a stopped or replaced session.
func (m Model) handleTick(msg TickMsg) (Model, tea.Cmd) {
	if !m.focus.Running() || msg.Seq != m.focus.Sequence() {
		return m, nil
	}
	m.focus.timer.Tick()
	if m.focus.finished {
		m.closeSession(true)
		return m, nil
	}
	return m, tickCmd(m.interval, msg.Seq)
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.focus.Running() {
		m.stopFocus()
	}
	return m, tea.Quit
}

// setMessage shows text in the footer for a while.
func (m *Model) setMessage(text string) tea.Cmd {
	m.Message = text
	return clearMessageCmd(text, messageTTL)
}

func (m Model) handleModalKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.modal.ActiveModal() {
	case ModalTaskCreate, ModalTaskEdit:
		return m.handleFormKey(msg)
	case ModalTaskDelete:
		return m.handleDeleteKey(msg)
	case ModalSetup:
		return m.handleSetupKey(msg)
	case ModalSearch:
		return m.handleSearchKey(msg)
	case ModalSettings:
		switch msg.String() {
		case "esc", "enter", "q", "s":
			m.modal.Close()
		}
		return m, nil
	}
	return m, nil
}
