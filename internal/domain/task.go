package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Priority is the urgency of a task.
type Priority string

// Valid priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultCategory is assigned to tasks created without a category.
const DefaultCategory = "personal"

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task validation errors
var (
	ErrEmptyTaskID     = NewValidationError("id", "cannot be empty", ErrValidation)
	ErrEmptyTaskOwner  = NewValidationError("owner", "cannot be empty", ErrValidation)
	ErrEmptyTitle      = NewValidationError("title", "cannot be empty", ErrValidation)
	ErrInvalidPriority = NewValidationError("priority", "must be one of low, medium, high", ErrValidation)
	ErrEmptyCategory   = NewValidationError("category", "cannot be empty", ErrValidation)
)

// Task is a single to-do item. UserID is the owner and never changes after
// creation.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"owner"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTaskParams carries the caller-controlled fields of a new task.
// The owner is passed separately and cannot come from client input.
type NewTaskParams struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Category    string
}

// NewTask builds a validated Task owned by ownerID. The title is
// capitalized and empty priority/category fall back to their defaults.
func NewTask(ownerID uuid.UUID, params NewTaskParams) (*Task, error) {
	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       NormalizeTitle(params.Title),
		Description: params.Description,
		Priority:    priority,
		DueDate:     params.DueDate,
		Category:    category,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// NormalizeTitle upper-cases the first character of title and leaves the
// rest untouched: "buy milk" becomes "Buy milk".
func NormalizeTitle(title string) string {
	r, size := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return title
	}
	return string(unicode.ToUpper(r)) + title[size:]
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.Valid() {
		return ErrInvalidPriority
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// IsOwnedBy reports whether userID owns the task.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// TaskPatch is a partial update. Nil fields are left unchanged.
// Ownership, ID and creation time are not patchable.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	Category    *string
	Completed   *bool

	// DueDate replaces the due date when set. ClearDueDate removes it and
	// takes precedence.
	DueDate      *time.Time
	ClearDueDate bool
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Priority == nil &&
		p.Category == nil && p.Completed == nil && p.DueDate == nil && !p.ClearDueDate
}

// ApplyPatch merges p into the task, bumps UpdatedAt and re-validates.
// On validation failure the task is left unmodified.
func (t *Task) ApplyPatch(p TaskPatch, now time.Time) error {
	updated := *t

	if p.Title != nil {
		updated.Title = *p.Title
	}
	if p.Description != nil {
		updated.Description = *p.Description
	}
	if p.Priority != nil {
		updated.Priority = *p.Priority
	}
	if p.Category != nil {
		updated.Category = *p.Category
	}
	if p.Completed != nil {
		updated.Completed = *p.Completed
	}
	if p.DueDate != nil {
		due := *p.DueDate
		updated.DueDate = &due
	}
	if p.ClearDueDate {
		updated.DueDate = nil
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = now.UTC()
	*t = updated
	return nil
}
