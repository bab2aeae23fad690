package tui

import (
	"math/rand"
	"time"

	"github.com/akyairhashvil/timeflow/internal/pomodoro"
)

var motivationalPhrases = []string{
	"The only way to do great work is to love what you do.",
	"Success is not final; failure is not fatal.",
	"The best preparation for tomorrow is doing your best today.",
	"Concentrate all your thoughts upon the work at hand.",
	"People rarely succeed unless they have fun in what they are doing.",
	"Small daily improvements lead to stunning results.",
	"Discipline is the bridge between goals and accomplishment.",
	"Never put off till tomorrow what you can do today.",
}

const finishedMessage = "Great job! Session complete!"

func randomPhrase() string {
	return motivationalPhrases[rand.Intn(len(motivationalPhrases))]
}

func phaseMessage(phase pomodoro.Phase) string {
	switch phase {
	case pomodoro.PhaseWork:
		return "Time to work!"
	case pomodoro.PhaseShortBreak:
		return "Time for a break!"
	case pomodoro.PhaseLongBreak:
		return "Time for a long break!"
	default:
		return ""
	}
}

// FocusSession owns the pomodoro timer hosted by the bubbletea loop. It is the
// timer's observer; the Update loop is the only caller, so no locking.
type FocusSession struct {
	timer     *pomodoro.Timer
	sessionID string
	startedAt time.Time
	total     int
	completed int
	phase     pomodoro.Phase
	remaining int
	message   string
	phrase    string
	finished  bool
}

func newFocusSession(cfg pomodoro.Config) *FocusSession {
	f := &FocusSession{phrase: randomPhrase()}
	f.timer = pomodoro.New(cfg, f)
	return f
}

func (f *FocusSession) OnPhaseChanged(phase pomodoro.Phase, remainingSeconds int) {
	f.phase = phase
	f.remaining = remainingSeconds
	f.message = phaseMessage(phase)
	f.completed = f.timer.State().CompletedRounds
}

func (f *FocusSession) OnFinished() {
	f.finished = true
	f.completed = f.total
	f.phase = pomodoro.PhaseIdle
	f.remaining = 0
	f.message = finishedMessage
}

// Start begins a session of rounds. The timer reports the first phase
// synchronously.
func (f *FocusSession) Start(rounds int, now time.Time) error {
	f.total = rounds
	f.completed = 0
	f.finished = false
	f.startedAt = now
	f.phrase = randomPhrase()
	if err := f.timer.Start(rounds); err != nil {
		f.total = 0
		return err
	}
	return nil
}

// Stop ends the session and returns the rounds completed before it.
func (f *FocusSession) Stop() int {
	completed := f.timer.State().CompletedRounds
	f.timer.Stop()
	f.phase = pomodoro.PhaseIdle
	f.remaining = 0
	f.message = ""
	return completed
}

func (f *FocusSession) Running() bool {
	return f != nil && f.timer.Running()
}

func (f *FocusSession) Sequence() uint64 {
	return f.timer.Sequence()
}

func (f *FocusSession) Progress() float64 {
	return f.timer.State().Progress(f.timer.Config())
}

func (f *FocusSession) Config() pomodoro.Config {
	return f.timer.Config()
}
