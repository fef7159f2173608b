package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/service"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// MockTaskService implements service.TaskService for testing
type MockTaskService struct {
	CreateFn func(ctx context.Context, callerID uuid.UUID, params domain.NewTaskParams) (*domain.Task, error)
	ListFn   func(ctx context.Context, callerID uuid.UUID, q store.TaskQuery) (*store.TaskPage, error)
	GetFn    func(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, error)
	UpdateFn func(ctx context.Context, callerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFn func(ctx context.Context, callerID, taskID uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Task *domain.Task
	Page *store.TaskPage
	Err  error
}

var _ service.TaskService = (*MockTaskService)(nil)

// Create implements the service.TaskService interface
func (m *MockTaskService) Create(
	ctx context.Context,
	callerID uuid.UUID,
	params domain.NewTaskParams,
) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, callerID, params)
	}
	return m.Task, m.Err
}

// List implements the service.TaskService interface
func (m *MockTaskService) List(
	ctx context.Context,
	callerID uuid.UUID,
	q store.TaskQuery,
) (*store.TaskPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, callerID, q)
	}
	return m.Page, m.Err
}

// Get implements the service.TaskService interface
func (m *MockTaskService) Get(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, callerID, taskID)
	}
	return m.Task, m.Err
}

// Update implements the service.TaskService interface
func (m *MockTaskService) Update(
	ctx context.Context,
	callerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, callerID, taskID, patch)
	}
	return m.Task, m.Err
}

// Delete implements the service.TaskService interface
func (m *MockTaskService) Delete(ctx context.Context, callerID, taskID uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, callerID, taskID)
	}
	return m.Err
}
