package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadIgnoresNonPositiveValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	data := "work_minutes: 50\nshort_break_minutes: 0\nlong_break_minutes: -3\nrounds_before_long_break: 2\ndefault_rounds: 99\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Work != 50*time.Minute {
		t.Fatalf("expected 50m work, got %s", got.Work)
	}
	if got.ShortBreak != ShortBreakDuration || got.LongBreak != LongBreakDuration {
		t.Fatalf("expected default breaks, got %s/%s", got.ShortBreak, got.LongBreak)
	}
	if got.RoundsBeforeLongBreak != 2 {
		t.Fatalf("expected cadence 2, got %d", got.RoundsBeforeLongBreak)
	}
	if got.DefaultRounds != DefaultRounds {
		t.Fatalf("expected out-of-range rounds to be ignored, got %d", got.DefaultRounds)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("work_minutes: [nope"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)
	want := DefaultSettings()
	want.Work = 45 * time.Minute
	want.ShortBreak = 10 * time.Minute
	want.DefaultRounds = 6
	want.HTTPAddr = "127.0.0.1:9999"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestTimerConfigValid(t *testing.T) {
	if err := DefaultSettings().TimerConfig().Validate(); err != nil {
		t.Fatalf("default timer config invalid: %v", err)
	}
}
