package database

import (
	"fmt"
	"strings"
)

const taskColumns = "id, date, description, important, start_time, end_time, color, created_at"

type TaskQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewTaskQuery() *TaskQuery {
	return &TaskQuery{columns: taskColumns, orderBy: "date, start_time, end_time, id"}
}

func (q *TaskQuery) Where(filter string, args ...interface{}) *TaskQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *TaskQuery) WhereID(id int64) *TaskQuery {
	return q.Where("id = ?", id)
}

func (q *TaskQuery) WhereDate(date string) *TaskQuery {
	return q.Where("date = ?", date)
}

// WhereDates matches any of dates. An empty list matches nothing.
func (q *TaskQuery) WhereDates(dates []string) *TaskQuery {
	if len(dates) == 0 {
		return q.Where("1 = 0")
	}
	args := make([]interface{}, len(dates))
	for i, d := range dates {
		args[i] = d
	}
	return q.Where("date IN ("+placeholders(len(dates))+")", args...)
}

func (q *TaskQuery) WhereImportant() *TaskQuery {
	return q.Where("important = 1")
}

func (q *TaskQuery) WhereDescriptionLike(term string) *TaskQuery {
	return q.Where("description LIKE ? ESCAPE '\\'", "%"+escapeLike(term)+"%")
}

func (q *TaskQuery) OrderBy(orderBy string) *TaskQuery {
	q.orderBy = orderBy
	return q
}

func (q *TaskQuery) Limit(limit int) *TaskQuery {
	q.limit = limit
	return q
}

func (q *TaskQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM tasks", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
