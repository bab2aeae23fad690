package tui

import (
	"testing"

	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"github.com/akyairhashvil/timeflow/internal/testutil"
)

func TestFocusSessionTracksPhases(t *testing.T) {
	cfg := testutil.NewConfig().WithWorkSeconds(2).WithBreakSeconds(1).WithLongBreakSeconds(1).Build()
	f := newFocusSession(cfg)
	if err := f.Start(2, testNow); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if f.phase != pomodoro.PhaseWork || f.remaining != 2 || f.message != "Time to work!" {
		t.Fatalf("unexpected start state: %+v", f)
	}
	if f.phrase == "" {
		t.Fatalf("expected a motivational phrase")
	}

	f.timer.Tick()
	f.timer.Tick()
	if f.phase != pomodoro.PhaseShortBreak || f.completed != 1 || f.message != "Time for a break!" {
		t.Fatalf("expected first break after one round, got %+v", f)
	}

	f.timer.Tick()
	f.timer.Tick()
	f.timer.Tick()
	if !f.finished || f.completed != 2 || f.message != finishedMessage || f.Running() {
		t.Fatalf("expected finished session, got %+v", f)
	}
}

func TestFocusSessionStopReportsRounds(t *testing.T) {
	cfg := testutil.NewConfig().WithWorkSeconds(1).WithBreakSeconds(5).Build()
	f := newFocusSession(cfg)
	if err := f.Start(3, testNow); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	seq := f.Sequence()
	f.timer.Tick()
	if got := f.Stop(); got != 1 {
		t.Fatalf("expected 1 completed round at stop, got %d", got)
	}
	if f.Running() || f.phase != pomodoro.PhaseIdle || f.message != "" {
		t.Fatalf("expected idle after stop, got %+v", f)
	}
	if f.Sequence() == seq {
		t.Fatalf("stop must advance the sequence")
	}
}

func TestFocusSessionRejectsInvalidRounds(t *testing.T) {
	f := newFocusSession(testutil.NewConfig().Build())
	if err := f.Start(0, testNow); err == nil {
		t.Fatalf("expected error for zero rounds")
	}
	if f.Running() || f.total != 0 {
		t.Fatalf("failed start must leave the session idle")
	}
	var nilSession *FocusSession
	if nilSession.Running() {
		t.Fatalf("nil session must not report running")
	}
}

func TestPhaseMessages(t *testing.T) {
	cases := map[pomodoro.Phase]string{
		pomodoro.PhaseWork:       "Time to work!",
		pomodoro.PhaseShortBreak: "Time for a break!",
		pomodoro.PhaseLongBreak:  "Time for a long break!",
		pomodoro.PhaseIdle:       "",
	}
	for phase, want := range cases {
		if got := phaseMessage(phase); got != want {
			t.Fatalf("phase %s: expected %q, got %q", phase, want, got)
		}
	}
}
