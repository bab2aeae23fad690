package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// TaskRepository defines task-related database operations.
type TaskRepository interface {
	AddTask(ctx context.Context, t models.Task) (int64, error)
	UpdateTask(ctx context.Context, t models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	GetTask(ctx context.Context, id int64) (models.Task, error)
	TasksForDate(ctx context.Context, date string) ([]models.Task, error)
	TasksForDates(ctx context.Context, dates []string) (map[string][]models.Task, error)
	SearchTasks(ctx context.Context, sq util.SearchQuery) ([]models.Task, error)
	CleanupOutsideDates(ctx context.Context, keep []string) (int64, error)
}

// SessionRepository defines pomodoro session log operations.
type SessionRepository interface {
	StartSession(ctx context.Context, cfg pomodoro.Config, totalRounds int, startedAt time.Time) (string, error)
	FinishSession(ctx context.Context, id string, status models.SessionStatus, completedRounds int, endedAt time.Time) error
	RecentSessions(ctx context.Context, limit int) ([]models.PomodoroSession, error)
	SessionsBetween(ctx context.Context, from, to time.Time) ([]models.PomodoroSession, error)
}

// Repository combines all repository interfaces.
type Repository interface {
	TaskRepository
	SessionRepository
}

var _ Repository = (*Database)(nil)
