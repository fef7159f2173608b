package store

import (
	"math"

	"github.com/phrazzld/taskdeck-api/internal/domain"
)

// Paging defaults and bounds.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Sort fields accepted in TaskQuery.SortBy. Any other value sorts by
// creation time.
const (
	SortByCreatedAt   = "createdAt"
	SortByUpdatedAt   = "updatedAt"
	SortByDueDate     = "dueDate"
	SortByTitle       = "title"
	SortByPriority    = "priority"
	SortByCategory    = "category"
	SortByCompleted   = "completed"
	SortByDescription = "description"
)

// SortOrder is the direction of a sort.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// TaskQuery holds the filter, sort and paging options for listing tasks.
// Nil or empty filter fields do not restrict the result.
type TaskQuery struct {
	Completed *bool
	Priority  *domain.Priority
	Category  *string

	SortBy string
	Order  SortOrder

	Page  int
	Limit int
}

// Normalize returns a copy of q with defaults applied and paging clamped.
func (q TaskQuery) Normalize() TaskQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if maxPage := math.MaxInt / q.Limit; q.Page > maxPage {
		q.Page = maxPage
	}
	if !IsSortField(q.SortBy) {
		q.SortBy = SortByCreatedAt
	}
	if q.Order != SortAsc {
		q.Order = SortDesc
	}
	return q
}

// Offset is the number of rows to skip for the query's page.
func (q TaskQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// IsSortField reports whether name is an accepted sort field.
func IsSortField(name string) bool {
	switch name {
	case SortByCreatedAt, SortByUpdatedAt, SortByDueDate, SortByTitle,
		SortByPriority, SortByCategory, SortByCompleted, SortByDescription:
		return true
	default:
		return false
	}
}

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for total matches at q's limit.
func NewPagination(q TaskQuery, total int) Pagination {
	pages := 0
	if q.Limit > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}
}

// TaskPage is one page of a task listing.
type TaskPage struct {
	Tasks      []*domain.Task
	Pagination Pagination
}
