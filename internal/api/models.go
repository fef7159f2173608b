package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/service"
)

// dateOnlyLayout is accepted for due dates alongside RFC 3339.
const dateOnlyLayout = "2006-01-02"

// ErrInvalidDueDate is returned when a due date is neither RFC 3339 nor a
// plain calendar date.
var ErrInvalidDueDate = errors.New("invalid due date")

// RegisterRequest defines the payload for the user registration endpoint.
// Emptiness is checked by the account service; the tags bound lengths only.
type RegisterRequest struct {
	Username string `json:"username" validate:"omitempty,max=100"`
	Email    string `json:"email"    validate:"omitempty,max=254"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password" validate:"omitempty,max=72"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Token    string    `json:"token"`
}

func newAuthResponse(res *service.AuthResult) AuthResponse {
	return AuthResponse{
		ID:       res.ID,
		Username: res.Username,
		Email:    res.Email,
		Token:    res.Token,
	}
}

// OptionalTime is a JSON date that distinguishes an absent key (Set false)
// from an explicit null (Set true, Valid false).
type OptionalTime struct {
	Set   bool
	Valid bool
	Time  time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Valid = false
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrInvalidDueDate
	}
	if raw == "" {
		o.Valid = false
		return nil
	}

	t, err := parseDueDate(raw)
	if err != nil {
		return err
	}
	o.Valid = true
	o.Time = t
	return nil
}

// Ptr returns the time when one was given, nil otherwise.
func (o OptionalTime) Ptr() *time.Time {
	if !o.Valid {
		return nil
	}
	t := o.Time
	return &t
}

func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDueDate
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string       `json:"title"       validate:"max=200"`
	Description string       `json:"description" validate:"max=2000"`
	Priority    string       `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     OptionalTime `json:"dueDate"`
	Category    string       `json:"category"    validate:"max=50"`
}

// ToParams converts the request into domain input.
func (r CreateTaskRequest) ToParams() domain.NewTaskParams {
	return domain.NewTaskParams{
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		DueDate:     r.DueDate.Ptr(),
		Category:    r.Category,
	}
}

// UpdateTaskRequest defines the payload for updating a task. Absent keys
// leave the field unchanged; a null dueDate clears it.
type UpdateTaskRequest struct {
	Title       *string      `json:"title"       validate:"omitempty,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	Priority    *string      `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     OptionalTime `json:"dueDate"`
	Category    *string      `json:"category"    validate:"omitempty,max=50"`
	Completed   *bool        `json:"completed"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateTaskRequest) ToPatch() domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := domain.Priority(*r.Priority)
		patch.Priority = &p
	}
	if r.DueDate.Set {
		if r.DueDate.Valid {
			patch.DueDate = r.DueDate.Ptr()
		} else {
			patch.ClearDueDate = true
		}
	}
	return patch
}

// emptyObject serializes as {}.
type emptyObject struct{}
