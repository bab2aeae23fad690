package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/testutil"
)

func openStore(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), config.DBFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPlannerAgainstSQLite(t *testing.T) {
	ctx := context.Background()
	db := openStore(t)
	seed := testutil.NewTask().WithDescription("Standup").WithTimes("09:00", "09:15").Important().Build()
	if _, err := db.AddTask(ctx, seed); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	m := NewModel(ctx, db, Options{Now: fixedNow, ReportDir: t.TempDir(), ExportDir: t.TempDir()})
	if got := m.dayTasks(); len(got) != 1 || got[0].Description != "Standup" {
		t.Fatalf("expected seeded task, got %+v", got)
	}

	m, _ = update(t, m, keyRunes("a"))
	fillForm(m, "Lunch with team", "12:00", "13:00")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal.IsOpen() {
		t.Fatalf("form should close after save: %s", m.form.err)
	}

	stored, err := db.TasksForDate(ctx, "2026-10-19")
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}
	if len(stored) != 2 || stored[1].Description != "Lunch with team" {
		t.Fatalf("expected new task persisted after the seed, got %+v", stored)
	}
	if len(m.dayTasks()) != 2 {
		t.Fatalf("model should reload after save")
	}

	m.cursor = 0
	m, _ = update(t, m, keyRunes("d"))
	m, _ = update(t, m, keyRunes("y"))
	stored, _ = db.TasksForDate(ctx, "2026-10-19")
	if len(stored) != 1 || stored[0].Description != "Lunch with team" {
		t.Fatalf("expected the standup to be deleted, got %+v", stored)
	}
}

func TestFocusSessionRecordedInSQLite(t *testing.T) {
	ctx := context.Background()
	db := openStore(t)
	m := NewModel(ctx, db, Options{Now: fixedNow, TickInterval: time.Millisecond})

	m, _ = update(t, m, keyRunes("p"))
	m, _ = update(t, m, keyRunes("2"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.focus.Running() {
		t.Fatalf("expected running session")
	}
	id := m.focus.sessionID

	m, _ = update(t, m, keyRunes("x"))
	if m.focus.Running() {
		t.Fatalf("expected stopped session")
	}

	s, err := db.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if s.Status != models.SessionStopped || s.TotalRounds != 2 || s.CompletedRounds != 0 {
		t.Fatalf("unexpected session record %+v", s)
	}
	if s.EndedAt == nil {
		t.Fatalf("stopped session must have an end time")
	}

	if v, ok, _ := db.GetSetting(ctx, settingSetupRounds); !ok || v != "2" {
		t.Fatalf("expected setup rounds persisted, got %q", v)
	}
}
