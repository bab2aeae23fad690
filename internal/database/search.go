package database

import (
	"context"

	"github.com/akyairhashvil/timeflow/internal/models"
	"github.com/akyairhashvil/timeflow/internal/util"
)

// SearchTasks lists the tasks matching a parsed search query. Every text
// term must appear in the description.
func (d *Database) SearchTasks(ctx context.Context, sq util.SearchQuery) ([]models.Task, error) {
	q := NewTaskQuery()
	if len(sq.Dates) > 0 {
		q.WhereDates(sq.Dates)
	}
	if sq.Important {
		q.WhereImportant()
	}
	for _, term := range sq.Text {
		q.WhereDescriptionLike(term)
	}
	return d.QueryTasks(ctx, q)
}
