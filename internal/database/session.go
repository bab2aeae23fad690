package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/pomodoro"
)

const sessionColumns = "id, started_at, ended_at, total_rounds, completed_rounds, work_seconds, break_seconds, long_break_seconds, status"

func scanSession(row rowScanner) (models.PomodoroSession, error) {
	var (
		s       models.PomodoroSession
		ended   sql.NullTime
		status  string
		started time.Time
	)
	if err := row.Scan(&s.ID, &started, &ended, &s.TotalRounds, &s.CompletedRounds,
		&s.WorkSeconds, &s.BreakSeconds, &s.LongBreakSeconds, &status); err != nil {
		return models.PomodoroSession{}, err
	}
	s.StartedAt = started.Local()
	if end := timePtr(ended); end != nil {
		local := end.Local()
		s.EndedAt = &local
	}
	s.Status = models.SessionStatus(status)
	return s, nil
}

// StartSession records a session that has just begun and returns its ID.
func (d *Database) StartSession(ctx context.Context, cfg pomodoro.Config, totalRounds int, startedAt time.Time) (string, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	id := uuid.NewString()
	_, err := d.DB.ExecContext(ctx, `
		INSERT INTO pomodoro_sessions
		(id, started_at, total_rounds, work_seconds, break_seconds, long_break_seconds, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, startedAt.UTC(), totalRounds,
		cfg.Seconds(pomodoro.PhaseWork), cfg.Seconds(pomodoro.PhaseShortBreak), cfg.Seconds(pomodoro.PhaseLongBreak),
		string(models.SessionRunning),
	)
	if err != nil {
		return "", fmt.Errorf("start session: %w", err)
	}
	log.Printf("pomodoro session %s started: %d rounds", id, totalRounds)
	return id, nil
}

// FinishSession closes a running session with its final status.
func (d *Database) FinishSession(ctx context.Context, id string, status models.SessionStatus, completedRounds int, endedAt time.Time) error {
	if status == models.SessionRunning {
		return fmt.Errorf("finish session %s: status must be final", id)
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, `
		UPDATE pomodoro_sessions SET ended_at = ?, completed_rounds = ?, status = ?
		WHERE id = ? AND status = ?`,
		endedAt.UTC(), completedRounds, string(status), id, string(models.SessionRunning),
	)
	if err != nil {
		return fmt.Errorf("finish session %s: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return fmt.Errorf("finish session %s: %w", id, err)
	}
	log.Printf("pomodoro session %s %s after %d rounds", id, status, completedRounds)
	return nil
}

func (d *Database) GetSession(ctx context.Context, id string) (models.PomodoroSession, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx, "SELECT "+sessionColumns+" FROM pomodoro_sessions WHERE id = ?", id)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PomodoroSession{}, fmt.Errorf("get session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.PomodoroSession{}, fmt.Errorf("get session %s: %w", id, err)
	}
	return s, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (d *Database) RecentSessions(ctx context.Context, limit int) ([]models.PomodoroSession, error) {
	if limit <= 0 {
		limit = 20
	}
	return d.querySessions(ctx,
		"SELECT "+sessionColumns+" FROM pomodoro_sessions ORDER BY started_at DESC LIMIT ?", limit)
}

// SessionsBetween returns sessions started in [from, to), oldest first.
func (d *Database) SessionsBetween(ctx context.Context, from, to time.Time) ([]models.PomodoroSession, error) {
	return d.querySessions(ctx,
		"SELECT "+sessionColumns+" FROM pomodoro_sessions WHERE started_at >= ? AND started_at < ? ORDER BY started_at ASC",
		from.UTC(), to.UTC())
}

// CloseAbandonedSessions marks sessions still flagged running as stopped.
// A crash or kill leaves them open; they are closed at the next startup.
func (d *Database) CloseAbandonedSessions(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx,
		"UPDATE pomodoro_sessions SET status = ?, ended_at = ? WHERE status = ?",
		string(models.SessionStopped), now.UTC(), string(models.SessionRunning))
	if err != nil {
		return 0, wrapErr(EntitySession, "close abandoned", 0, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, wrapErr(EntitySession, "close abandoned", 0, err)
	}
	return n, nil
}

func (d *Database) querySessions(ctx context.Context, query string, args ...interface{}) ([]models.PomodoroSession, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntitySession, "list", 0, err)
	}
	defer rows.Close()

	var out []models.PomodoroSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, wrapErr(EntitySession, "list", 0, err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntitySession, "list", 0, err)
	}
	return out, nil
}
