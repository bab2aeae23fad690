package pomodoro

// Phase identifies the interval a session is currently in.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseWork       Phase = "work"
	PhaseShortBreak Phase = "break"
	PhaseLongBreak  Phase = "long_break"
)

// Active reports whether the phase counts down.
func (p Phase) Active() bool {
	return p == PhaseWork || p == PhaseShortBreak || p == PhaseLongBreak
}

// IsBreak reports whether the phase is a short or long break.
func (p Phase) IsBreak() bool {
	return p == PhaseShortBreak || p == PhaseLongBreak
}

func (p Phase) String() string {
	return string(p)
}

// Observer receives timer notifications. Both methods run synchronously
// inside Start or Tick and must return promptly.
type Observer interface {
	OnPhaseChanged(phase Phase, remainingSeconds int)
	OnFinished()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	PhaseChanged func(phase Phase, remainingSeconds int)
	Finished     func()
}

func (f ObserverFuncs) OnPhaseChanged(phase Phase, remainingSeconds int) {
	if f.PhaseChanged != nil {
		f.PhaseChanged(phase, remainingSeconds)
	}
}

func (f ObserverFuncs) OnFinished() {
	if f.Finished != nil {
		f.Finished()
	}
}
