package tui

import (
	"time"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
)

const (
	setupFieldRounds = iota
	setupFieldWork
	setupFieldBreak
	setupFieldCount
)

// SetupState is the pomodoro prompt: rounds, work and break minutes picked
// from fixed choices.
type SetupState struct {
	field    int
	rounds   int
	workIdx  int
	breakIdx int
}

func newSetupState(s config.Settings) SetupState {
	return SetupState{
		rounds:   clampRounds(s.DefaultRounds),
		workIdx:  indexOf(config.WorkChoices, int(s.Work/time.Minute), indexOf(config.WorkChoices, int(config.WorkDuration/time.Minute), 0)),
		breakIdx: indexOf(config.BreakChoices, int(s.ShortBreak/time.Minute), 0),
	}
}

func clampRounds(n int) int {
	if n < 1 || n > config.MaxRounds {
		return config.DefaultRounds
	}
	return n
}

func (s *SetupState) moveField(delta int) {
	s.field = (s.field + delta + setupFieldCount) % setupFieldCount
}

func (s *SetupState) adjust(delta int) {
	switch s.field {
	case setupFieldRounds:
		s.rounds = wrap(s.rounds-1+delta, config.MaxRounds) + 1
	case setupFieldWork:
		s.workIdx = wrap(s.workIdx+delta, len(config.WorkChoices))
	case setupFieldBreak:
		s.breakIdx = wrap(s.breakIdx+delta, len(config.BreakChoices))
	}
}

func (s SetupState) workMinutes() int  { return config.WorkChoices[s.workIdx] }
func (s SetupState) breakMinutes() int { return config.BreakChoices[s.breakIdx] }

// timerConfig applies the chosen work and break lengths over the configured
// long break and cadence.
func (s SetupState) timerConfig(base config.Settings) pomodoro.Config {
	cfg := base.TimerConfig()
	cfg.Work = time.Duration(s.workMinutes()) * time.Minute
	cfg.ShortBreak = time.Duration(s.breakMinutes()) * time.Minute
	return cfg
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
