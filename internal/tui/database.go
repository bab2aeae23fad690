package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/timeflow/internal/database"
	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// Database defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_database_test.go -package=tui
type Database interface {
	AddTask(ctx context.Context, t models.Task) (int64, error)
	UpdateTask(ctx context.Context, t models.Task) error
	DeleteTask(ctx context.Context, id int64) error
	TasksForDates(ctx context.Context, dates []string) (map[string][]models.Task, error)
	SearchTasks(ctx context.Context, sq util.SearchQuery) ([]models.Task, error)

	StartSession(ctx context.Context, cfg pomodoro.Config, totalRounds int, startedAt time.Time) (string, error)
	FinishSession(ctx context.Context, id string, status models.SessionStatus, completedRounds int, endedAt time.Time) error
	SessionsBetween(ctx context.Context, from, to time.Time) ([]models.PomodoroSession, error)

	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	ExportAll(ctx context.Context) (database.Export, error)
}

var _ Database = (*database.Database)(nil)
