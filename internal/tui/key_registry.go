package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler reacts to a key in normal mode. It reports whether it consumed
// the key.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

// KeyBinding ties one or more keys to a handler. Keys[0] is the one shown in
// help. An empty Views slice means every view.
type KeyBinding struct {
	Keys    []string
	Help    string
	Views   []ViewMode
	Handler KeyHandler
}

func (b KeyBinding) activeIn(mode ViewMode) bool {
	return len(b.Views) == 0 || slices.Contains(b.Views, mode)
}

// Keymap dispatches normal-mode keys in registration order.
type Keymap struct {
	bindings []KeyBinding
	byKey    map[string][]int
}

func NewKeymap() *Keymap {
	return &Keymap{byKey: make(map[string][]int)}
}

func (k *Keymap) Bind(b KeyBinding) {
	idx := len(k.bindings)
	k.bindings = append(k.bindings, b)
	for _, key := range b.Keys {
		k.byKey[key] = append(k.byKey[key], idx)
	}
}

// Handle runs the first binding for key that is active in m's view and
// accepts the key.
func (k *Keymap) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, idx := range k.byKey[key] {
		b := k.bindings[idx]
		if !b.activeIn(m.view) {
			continue
		}
		if next, cmd, ok := b.Handler(m, key); ok {
			return next, cmd, true
		}
	}
	return m, nil, false
}

// HelpForView renders "[key]help" hints for bindings active in mode.
func (k *Keymap) HelpForView(mode ViewMode) string {
	var sb strings.Builder
	for _, b := range k.bindings {
		if b.Help == "" || len(b.Keys) == 0 || !b.activeIn(mode) {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("[" + b.Keys[0] + "]" + b.Help)
	}
	return sb.String()
}
