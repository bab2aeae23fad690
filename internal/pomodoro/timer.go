// Package pomodoro implements the interval timer that sequences work and
// break phases. The Timer itself is not safe for concurrent use; it expects
// a host (the TUI event loop or a Runner) to serialize every call.
package pomodoro

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidConfiguration is returned for non-positive durations or round counts.
	ErrInvalidConfiguration = errors.New("invalid timer configuration")
	// ErrSessionActive is returned when reconfiguring while a phase is running.
	ErrSessionActive = errors.New("session is active")
)

// Config holds the phase durations for one session.
type Config struct {
	Work                  time.Duration
	ShortBreak            time.Duration
	LongBreak             time.Duration
	RoundsBeforeLongBreak int
}

// Validate checks that every duration is at least one second and that the
// long-break cadence is positive.
func (c Config) Validate() error {
	switch {
	case c.Work < time.Second:
		return fmt.Errorf("%w: work duration %s", ErrInvalidConfiguration, c.Work)
	case c.ShortBreak < time.Second:
		return fmt.Errorf("%w: break duration %s", ErrInvalidConfiguration, c.ShortBreak)
	case c.LongBreak < time.Second:
		return fmt.Errorf("%w: long break duration %s", ErrInvalidConfiguration, c.LongBreak)
	case c.RoundsBeforeLongBreak <= 0:
		return fmt.Errorf("%w: rounds before long break %d", ErrInvalidConfiguration, c.RoundsBeforeLongBreak)
	}
	return nil
}

// Seconds returns the whole-second length of a phase.
func (c Config) Seconds(phase Phase) int {
	switch phase {
	case PhaseWork:
		return int(c.Work / time.Second)
	case PhaseShortBreak:
		return int(c.ShortBreak / time.Second)
	case PhaseLongBreak:
		return int(c.LongBreak / time.Second)
	}
	return 0
}

// SessionState is a snapshot of the running session.
type SessionState struct {
	Phase            Phase
	RemainingSeconds int
	CompletedRounds  int
	TotalRounds      int
	Sequence         uint64
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (s SessionState) Progress(cfg Config) float64 {
	total := cfg.Seconds(s.Phase)
	if total <= 0 {
		return 0
	}
	progress := float64(total-s.RemainingSeconds) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Timer is the phase state machine.
type Timer struct {
	config    Config
	observer  Observer
	phase     Phase
	remaining int
	completed int
	total     int
	sequence  uint64
}

// New creates an idle Timer. A nil observer drops notifications.
func New(config Config, observer Observer) *Timer {
	if observer == nil {
		observer = ObserverFuncs{}
	}
	return &Timer{
		config:   config,
		observer: observer,
		phase:    PhaseIdle,
	}
}

// Config returns the durations used for the next or current session.
func (t *Timer) Config() Config {
	return t.config
}

// SetConfig replaces the durations. It is rejected while a phase is running.
func (t *Timer) SetConfig(config Config) error {
	if t.phase.Active() {
		return ErrSessionActive
	}
	if err := config.Validate(); err != nil {
		return err
	}
	t.config = config
	return nil
}

// State returns a copy of the session state.
func (t *Timer) State() SessionState {
	return SessionState{
		Phase:            t.phase,
		RemainingSeconds: t.remaining,
		CompletedRounds:  t.completed,
		TotalRounds:      t.total,
		Sequence:         t.sequence,
	}
}

// Running reports whether a phase is active.
func (t *Timer) Running() bool {
	return t.phase.Active()
}

// Sequence identifies the current session. It changes on every Start and
// Stop so hosts can discard ticks scheduled for an earlier session.
func (t *Timer) Sequence() uint64 {
	return t.sequence
}

// Start begins a new session in the work phase, replacing any session in
// progress, and notifies the observer with the full work duration.
func (t *Timer) Start(totalRounds int) error {
	if totalRounds <= 0 {
		return fmt.Errorf("%w: total rounds %d", ErrInvalidConfiguration, totalRounds)
	}
	if err := t.config.Validate(); err != nil {
		return err
	}
	t.sequence++
	t.total = totalRounds
	t.completed = 0
	t.enter(PhaseWork)
	return nil
}

// Stop cancels the session without notifying the observer. Calling it on an
// idle timer does nothing.
func (t *Timer) Stop() {
	if t.phase == PhaseIdle {
		return
	}
	t.sequence++
	t.reset()
}

// Tick advances the active phase by one second. Ticks delivered while idle
// are ignored.
func (t *Timer) Tick() {
	if !t.phase.Active() {
		return
	}
	t.remaining--
	if t.remaining > 0 {
		t.observer.OnPhaseChanged(t.phase, t.remaining)
		return
	}
	t.remaining = 0
	t.finishPhase()
}

func (t *Timer) finishPhase() {
	if t.phase != PhaseWork {
		t.enter(PhaseWork)
		return
	}

	t.completed++
	if t.completed >= t.total {
		t.reset()
		t.observer.OnFinished()
		return
	}
	if t.completed%t.config.RoundsBeforeLongBreak == 0 {
		t.enter(PhaseLongBreak)
		return
	}
	t.enter(PhaseShortBreak)
}

// enter switches phase and notifies last, so an observer may call Stop.
func (t *Timer) enter(phase Phase) {
	t.phase = phase
	t.remaining = t.config.Seconds(phase)
	t.observer.OnPhaseChanged(phase, t.remaining)
}

func (t *Timer) reset() {
	t.phase = PhaseIdle
	t.remaining = 0
	t.completed = 0
	t.total = 0
}
