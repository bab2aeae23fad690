package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
)

type ExportTask struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Important   bool   `json:"important"`
	StartTime   string `json:"start_time,omitempty"`
	EndTime     string `json:"end_time,omitempty"`
	Color       string `json:"color"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type ExportSession struct {
	ID               string  `json:"id"`
	StartedAt        string  `json:"started_at"`
	EndedAt          *string `json:"ended_at,omitempty"`
	TotalRounds      int     `json:"total_rounds"`
	CompletedRounds  int     `json:"completed_rounds"`
	WorkSeconds      int     `json:"work_seconds"`
	BreakSeconds     int     `json:"break_seconds"`
	LongBreakSeconds int     `json:"long_break_seconds"`
	Status           string  `json:"status"`
}

type Export struct {
	ExportedAt string          `json:"exported_at"`
	Tasks      []ExportTask    `json:"tasks"`
	Sessions   []ExportSession `json:"sessions"`
}

// ExportAll snapshots every task and session.
func (d *Database) ExportAll(ctx context.Context) (Export, error) {
	tasks, err := d.QueryTasks(ctx, NewTaskQuery().OrderBy("id ASC"))
	if err != nil {
		return Export{}, err
	}
	sessions, err := d.querySessions(ctx, "SELECT "+sessionColumns+" FROM pomodoro_sessions ORDER BY started_at ASC")
	if err != nil {
		return Export{}, err
	}

	out := Export{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Tasks:      make([]ExportTask, 0, len(tasks)),
		Sessions:   make([]ExportSession, 0, len(sessions)),
	}
	for _, t := range tasks {
		et := ExportTask{
			ID:          t.ID,
			Date:        t.Date,
			Description: t.Description,
			Important:   t.Important,
			StartTime:   t.StartTime,
			EndTime:     t.EndTime,
			Color:       t.Color,
		}
		if !t.CreatedAt.IsZero() {
			et.CreatedAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		out.Tasks = append(out.Tasks, et)
	}
	for _, s := range sessions {
		es := ExportSession{
			ID:               s.ID,
			StartedAt:        s.StartedAt.UTC().Format(time.RFC3339),
			TotalRounds:      s.TotalRounds,
			CompletedRounds:  s.CompletedRounds,
			WorkSeconds:      s.WorkSeconds,
			BreakSeconds:     s.BreakSeconds,
			LongBreakSeconds: s.LongBreakSeconds,
			Status:           string(s.Status),
		}
		if s.EndedAt != nil {
			val := s.EndedAt.UTC().Format(time.RFC3339)
			es.EndedAt = &val
		}
		out.Sessions = append(out.Sessions, es)
	}
	return out, nil
}

// ImportAll merges an export into the database in one transaction. Rows with
// matching IDs are replaced. Invalid tasks abort the import.
func (d *Database) ImportAll(ctx context.Context, export Export) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		for _, et := range export.Tasks {
			task := models.Task{
				ID:          et.ID,
				Date:        et.Date,
				Description: et.Description,
				Important:   et.Important,
				StartTime:   et.StartTime,
				EndTime:     et.EndTime,
				Color:       et.Color,
			}
			task, err := normalizeTask(task)
			if err != nil {
				return fmt.Errorf("import task %d: %w", et.ID, err)
			}
			createdAt, err := parseOptionalTime(et.CreatedAt)
			if err != nil {
				return fmt.Errorf("import task %d: %w", et.ID, err)
			}
			if createdAt == nil {
				now := time.Now().UTC()
				createdAt = &now
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO tasks (id, date, description, important, start_time, end_time, color, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				nilIfZero(task.ID), task.Date, task.Description, boolToInt(task.Important),
				nullableString(task.StartTime), nullableString(task.EndTime), task.Color, *createdAt,
			); err != nil {
				return fmt.Errorf("import task %d: %w", et.ID, err)
			}
		}

		for _, es := range export.Sessions {
			if strings.TrimSpace(es.ID) == "" {
				return fmt.Errorf("import session: missing id")
			}
			started, err := parseOptionalTime(es.StartedAt)
			if err != nil || started == nil {
				return fmt.Errorf("import session %s: invalid started_at", es.ID)
			}
			var ended *time.Time
			if es.EndedAt != nil {
				if ended, err = parseOptionalTime(*es.EndedAt); err != nil {
					return fmt.Errorf("import session %s: %w", es.ID, err)
				}
			}
			status := es.Status
			if strings.TrimSpace(status) == "" {
				status = string(models.SessionStopped)
			}
			if _, err := tx.ExecContext(ctx, `
				INSERT OR REPLACE INTO pomodoro_sessions
				(id, started_at, ended_at, total_rounds, completed_rounds, work_seconds, break_seconds, long_break_seconds, status)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				es.ID, *started, toNullableArg(ended), es.TotalRounds, es.CompletedRounds,
				es.WorkSeconds, es.BreakSeconds, es.LongBreakSeconds, status,
			); err != nil {
				return fmt.Errorf("import session %s: %w", es.ID, err)
			}
		}
		return nil
	})
}

func parseOptionalTime(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("parse time %q: %w", value, err)
	}
	utc := parsed.UTC()
	return &utc, nil
}

func nilIfZero(id int64) interface{} {
	if id <= 0 {
		return nil
	}
	return id
}

// DefaultExportName is the file name used when no output path is given.
func DefaultExportName(now time.Time) string {
	return fmt.Sprintf("%s-export-%s.json", config.AppName, now.Format("20060102-150405"))
}
