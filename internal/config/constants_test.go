package config

import "testing"

func TestConstants(t *testing.T) {
	if WorkDuration <= 0 || ShortBreakDuration <= 0 || LongBreakDuration <= 0 {
		t.Fatalf("timer durations must be positive")
	}
	if RoundsBeforeLongBreak <= 0 {
		t.Fatalf("RoundsBeforeLongBreak must be positive")
	}
	if DefaultRounds <= 0 || DefaultRounds > MaxRounds {
		t.Fatalf("DefaultRounds must be within 1..%d", MaxRounds)
	}
	if AppName == "" || DBFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if len(WorkChoices) == 0 || len(BreakChoices) == 0 {
		t.Fatalf("setup choices should not be empty")
	}
}
