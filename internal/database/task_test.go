package database

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

func newTask(date, desc, start, end string) models.Task {
	return models.Task{Date: date, Description: desc, StartTime: start, EndTime: end}
}

func TestTaskLifecycle(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	id, err := db.AddTask(ctx, newTask("2026-10-19", "  Write report  ", "09:00", "10:30"))
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	got, err := db.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Description != "Write report" {
		t.Fatalf("expected trimmed description, got %q", got.Description)
	}
	if got.Color != config.DefaultTaskColor {
		t.Fatalf("expected default color, got %q", got.Color)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got.Important = true
	got.Color = "#ff8800"
	got.EndTime = "11:00"
	if err := db.UpdateTask(ctx, got); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	updated, err := db.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("GetTask after update failed: %v", err)
	}
	if !updated.Important || updated.Color != "#ff8800" || updated.EndTime != "11:00" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := db.DeleteTask(ctx, id); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := db.GetTask(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := db.DeleteTask(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestAddTaskRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	cases := []struct {
		name string
		task models.Task
		want error
	}{
		{"short description", newTask("2026-10-19", "ab", "09:00", "10:00"), models.ErrDescriptionShort},
		{"end before start", newTask("2026-10-19", "Standup", "10:00", "09:30"), models.ErrTimeOrder},
		{"bad color", models.Task{Date: "2026-10-19", Description: "Standup", StartTime: "09:00", EndTime: "09:15", Color: "blue"}, models.ErrInvalidColor},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := db.AddTask(ctx, tc.task); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	tasks, err := db.TasksForDate(ctx, "2026-10-19")
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("invalid tasks must not be stored, got %d", len(tasks))
	}
}

func TestUpdateMissingTask(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	task := newTask("2026-10-19", "Ghost task", "09:00", "10:00")
	task.ID = 404
	if err := db.UpdateTask(ctx, task); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTasksForDateOrdering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, task := range []models.Task{
		newTask("2026-10-19", "Lunch", "12:00", "13:00"),
		newTask("2026-10-19", "Early call", "08:00", "08:30"),
		newTask("2026-10-19", "Long block", "08:00", "11:00"),
		newTask("2026-10-20", "Tomorrow", "07:00", "08:00"),
	} {
		if _, err := db.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask %q failed: %v", task.Description, err)
		}
	}

	tasks, err := db.TasksForDate(ctx, "2026-10-19")
	if err != nil {
		t.Fatalf("TasksForDate failed: %v", err)
	}
	want := []string{"Early call", "Long block", "Lunch"}
	if len(tasks) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(tasks))
	}
	for i, desc := range want {
		if tasks[i].Description != desc {
			t.Fatalf("position %d: expected %q, got %q", i, desc, tasks[i].Description)
		}
	}
}

func TestTasksForDatesGroupsByDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, task := range []models.Task{
		newTask("2026-10-19", "Monday work", "09:00", "10:00"),
		newTask("2026-10-21", "Wednesday work", "09:00", "10:00"),
		newTask("2026-11-30", "Out of range", "09:00", "10:00"),
	} {
		if _, err := db.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	dates := []string{"2026-10-19", "2026-10-20", "2026-10-21"}
	byDate, err := db.TasksForDates(ctx, dates)
	if err != nil {
		t.Fatalf("TasksForDates failed: %v", err)
	}
	if len(byDate) != 3 {
		t.Fatalf("expected an entry per date, got %d", len(byDate))
	}
	if len(byDate["2026-10-19"]) != 1 || len(byDate["2026-10-20"]) != 0 || len(byDate["2026-10-21"]) != 1 {
		t.Fatalf("unexpected grouping: %+v", byDate)
	}
	if _, ok := byDate["2026-11-30"]; ok {
		t.Fatalf("dates outside the request must not appear")
	}
}

func TestCleanupOutsideDates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	for _, task := range []models.Task{
		newTask("2026-10-12", "Last week", "09:00", "10:00"),
		newTask("2026-10-19", "This week", "09:00", "10:00"),
		newTask("2026-10-30", "Far future", "09:00", "10:00"),
	} {
		if _, err := db.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	if n, err := db.CleanupOutsideDates(ctx, nil); err != nil || n != 0 {
		t.Fatalf("empty window must be a no-op, got n=%d err=%v", n, err)
	}

	week := []string{"2026-10-19", "2026-10-20", "2026-10-21", "2026-10-22", "2026-10-23", "2026-10-24", "2026-10-25"}
	removed, err := db.CleanupOutsideDates(ctx, week)
	if err != nil {
		t.Fatalf("CleanupOutsideDates failed: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	remaining, err := db.QueryTasks(ctx, NewTaskQuery())
	if err != nil {
		t.Fatalf("QueryTasks failed: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Description != "This week" {
		t.Fatalf("unexpected remaining tasks: %+v", remaining)
	}
}

func TestSearchTasks(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	important := newTask("2026-10-19", "Quarterly report draft", "09:00", "11:00")
	important.Important = true
	for _, task := range []models.Task{
		important,
		newTask("2026-10-19", "Report review", "13:00", "14:00"),
		newTask("2026-10-20", "Gym 100%", "18:00", "19:00"),
	} {
		if _, err := db.AddTask(ctx, task); err != nil {
			t.Fatalf("AddTask failed: %v", err)
		}
	}

	cases := []struct {
		query string
		want  int
	}{
		{"report", 2},
		{"is:important report", 1},
		{"date:2026-10-20", 1},
		{"date:2026-10-20 report", 0},
		{"100%", 1},
		{"%", 1},
		{"", 3},
	}
	for _, tc := range cases {
		got, err := db.SearchTasks(ctx, util.ParseSearchQuery(tc.query))
		if err != nil {
			t.Fatalf("SearchTasks(%q) failed: %v", tc.query, err)
		}
		if len(got) != tc.want {
			t.Fatalf("SearchTasks(%q): expected %d, got %d", tc.query, tc.want, len(got))
		}
	}
}

func TestTaskQueryBuild(t *testing.T) {
	query, args := NewTaskQuery().WhereDates([]string{"a", "b"}).WhereImportant().Limit(5).Build()
	want := "SELECT " + taskColumns + " FROM tasks WHERE date IN (?, ?) AND important = 1 ORDER BY date, start_time, end_time, id LIMIT 5"
	if query != want {
		t.Fatalf("unexpected query:\n%s\nwant:\n%s", query, want)
	}
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(args))
	}

	empty, _ := NewTaskQuery().WhereDates(nil).Build()
	if empty != "SELECT "+taskColumns+" FROM tasks WHERE 1 = 0 ORDER BY date, start_time, end_time, id" {
		t.Fatalf("empty date list must match nothing: %s", empty)
	}
}
