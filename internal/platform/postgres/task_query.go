package postgres

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

const taskColumns = `id, user_id, title, description, priority, due_date, category, completed, created_at, updated_at`

// taskSortColumns maps the sort fields accepted by the API onto columns.
// Column names cannot be bound as parameters, so only names from this map
// ever reach the ORDER BY clause.
var taskSortColumns = map[string]string{
	store.SortByCreatedAt:   "created_at",
	store.SortByUpdatedAt:   "updated_at",
	store.SortByDueDate:     "due_date",
	store.SortByTitle:       "title",
	store.SortByPriority:    "priority",
	store.SortByCategory:    "category",
	store.SortByCompleted:   "completed",
	store.SortByDescription: "description",
}

// taskListQuery is a page query together with the matching count query.
// Both share the same WHERE clause and leading arguments.
type taskListQuery struct {
	listSQL   string
	listArgs  []any
	countSQL  string
	countArgs []any
}

// buildTaskListQuery builds the SQL for one page of ownerID's tasks. The
// owner predicate is always the first condition; q's filters are ANDed
// after it. q is normalized here so callers cannot skip the defaults.
func buildTaskListQuery(ownerID uuid.UUID, q store.TaskQuery) taskListQuery {
	q = q.Normalize()

	conditions := []string{"user_id = $1"}
	args := []any{ownerID}

	addCondition := func(column string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if q.Completed != nil {
		addCondition("completed", *q.Completed)
	}
	if q.Priority != nil {
		addCondition("priority", string(*q.Priority))
	}
	if q.Category != nil {
		addCondition("category", *q.Category)
	}

	where := strings.Join(conditions, " AND ")

	column, ok := taskSortColumns[q.SortBy]
	if !ok {
		column = taskSortColumns[store.SortByCreatedAt]
	}
	direction := "DESC"
	if q.Order == store.SortAsc {
		direction = "ASC"
	}

	countArgs := make([]any, len(args))
	copy(countArgs, args)

	listArgs := append(args, q.Limit, q.Offset())
	listSQL := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY %s %s, id %s LIMIT $%d OFFSET $%d",
		taskColumns, where, column, direction, direction, len(listArgs)-1, len(listArgs),
	)

	return taskListQuery{
		listSQL:   listSQL,
		listArgs:  listArgs,
		countSQL:  "SELECT COUNT(*) FROM tasks WHERE " + where,
		countArgs: countArgs,
	}
}
