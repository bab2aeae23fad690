package database

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/akyairhashvil/timeflow/internal/config"
	"github.com/akyairhashvil/timeflow/internal/models"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t         models.Task
		important int
		start     sql.NullString
		end       sql.NullString
		color     sql.NullString
		createdAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.Date, &t.Description, &important, &start, &end, &color, &createdAt); err != nil {
		return models.Task{}, err
	}
	t.Important = important != 0
	t.StartTime = start.String
	t.EndTime = end.String
	t.Color = color.String
	if t.Color == "" {
		t.Color = config.DefaultTaskColor
	}
	if createdAt.Valid {
		t.CreatedAt = createdAt.Time
	}
	return t, nil
}

func normalizeTask(t models.Task) (models.Task, error) {
	t.Description = strings.TrimSpace(t.Description)
	t.StartTime = strings.TrimSpace(t.StartTime)
	t.EndTime = strings.TrimSpace(t.EndTime)
	if t.Color == "" {
		t.Color = config.DefaultTaskColor
	}
	if err := t.Validate(config.MinDescriptionLength, config.MaxDescriptionLength); err != nil {
		return t, err
	}
	return t, nil
}

// AddTask validates and stores t, returning its new ID.
func (d *Database) AddTask(ctx context.Context, t models.Task) (int64, error) {
	t, err := normalizeTask(t)
	if err != nil {
		return 0, err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO tasks (date, description, important, start_time, end_time, color)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Date, t.Description, boolToInt(t.Important), nullableString(t.StartTime), nullableString(t.EndTime), t.Color,
	)
	if err != nil {
		return 0, wrapErr(EntityTask, "add", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapErr(EntityTask, "add", 0, err)
	}
	log.Printf("task %d added for %s", id, t.Date)
	return id, nil
}

// UpdateTask replaces the editable fields of the task with t.ID.
func (d *Database) UpdateTask(ctx context.Context, t models.Task) error {
	t, err := normalizeTask(t)
	if err != nil {
		return err
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, `
		UPDATE tasks SET date = ?, description = ?, important = ?, start_time = ?, end_time = ?, color = ?
		WHERE id = ?`,
		t.Date, t.Description, boolToInt(t.Important), nullableString(t.StartTime), nullableString(t.EndTime), t.Color, t.ID,
	)
	if err != nil {
		return wrapErr(EntityTask, "update", t.ID, err)
	}
	if err := requireAffected(res); err != nil {
		return wrapErr(EntityTask, "update", t.ID, err)
	}
	log.Printf("task %d updated", t.ID)
	return nil
}

func (d *Database) DeleteTask(ctx context.Context, id int64) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityTask, "delete", id, err)
	}
	if err := requireAffected(res); err != nil {
		return wrapErr(EntityTask, "delete", id, err)
	}
	log.Printf("task %d deleted", id)
	return nil
}

func (d *Database) GetTask(ctx context.Context, id int64) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query, args := NewTaskQuery().WhereID(id).Build()
	t, err := scanTask(d.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, wrapErr(EntityTask, "get", id, ErrNotFound)
	}
	if err != nil {
		return models.Task{}, wrapErr(EntityTask, "get", id, err)
	}
	return t, nil
}

// TasksForDate lists the tasks on date ordered by start and end time.
func (d *Database) TasksForDate(ctx context.Context, date string) ([]models.Task, error) {
	return d.QueryTasks(ctx, NewTaskQuery().WhereDate(date))
}

// TasksForDates groups the tasks on each of dates by date. Every requested
// date has an entry, possibly empty.
func (d *Database) TasksForDates(ctx context.Context, dates []string) (map[string][]models.Task, error) {
	tasks, err := d.QueryTasks(ctx, NewTaskQuery().WhereDates(dates))
	if err != nil {
		return nil, err
	}
	out := make(map[string][]models.Task, len(dates))
	for _, date := range dates {
		out[date] = nil
	}
	for _, t := range tasks {
		out[t.Date] = append(out[t.Date], t)
	}
	return out, nil
}

// QueryTasks runs a prepared task query.
func (d *Database) QueryTasks(ctx context.Context, q *TaskQuery) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(EntityTask, "list", 0, err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, wrapErr(EntityTask, "list", 0, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityTask, "list", 0, err)
	}
	return out, nil
}

// CleanupOutsideDates removes tasks dated outside keep and returns how many
// were deleted. An empty keep list is refused so a bad window cannot wipe the
// table.
func (d *Database) CleanupOutsideDates(ctx context.Context, keep []string) (int64, error) {
	if len(keep) == 0 {
		return 0, nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	args := make([]interface{}, len(keep))
	for i, date := range keep {
		args[i] = date
	}
	var removed int64
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE date NOT IN ("+placeholders(len(keep))+")", args...)
		if err != nil {
			return err
		}
		removed, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, wrapErr(EntityTask, "cleanup", 0, err)
	}
	if removed > 0 {
		log.Printf("cleanup removed %d tasks outside %s..%s", removed, keep[0], keep[len(keep)-1])
	}
	return removed, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
