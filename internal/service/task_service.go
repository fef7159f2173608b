package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/domain"
	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/store"
)

// TaskService manages the lifecycle of tasks on behalf of their owners.
type TaskService interface {
	// Create stores a new task owned by callerID.
	// Returns ErrMissingField when the title is empty.
	Create(ctx context.Context, callerID uuid.UUID, params domain.NewTaskParams) (*domain.Task, error)

	// List returns one page of callerID's tasks.
	List(ctx context.Context, callerID uuid.UUID, q store.TaskQuery) (*store.TaskPage, error)

	// Get returns a task owned by callerID.
	Get(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, error)

	// Update applies patch to a task owned by callerID and returns the
	// stored result.
	Update(ctx context.Context, callerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// Delete permanently removes a task owned by callerID.
	Delete(ctx context.Context, callerID, taskID uuid.UUID) error
}

type taskServiceImpl struct {
	tasks    store.TaskStore
	db       *sql.DB
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewTaskService creates a TaskService. db is used to open the transaction
// around updates.
// It returns an error if any of the required dependencies are nil.
func NewTaskService(tasks store.TaskStore, db *sql.DB, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, domain.NewValidationError("tasks", "cannot be nil", domain.ErrValidation)
	}
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		tasks:    tasks,
		db:       db,
		logger:   logger.With(slog.String("component", "task_service")),
		timeFunc: time.Now,
	}, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(
	ctx context.Context,
	callerID uuid.UUID,
	params domain.NewTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if params.Title == "" {
		return nil, missingField("title")
	}

	task, err := domain.NewTask(callerID, params)
	if err != nil {
		log.Debug("rejected invalid task", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		log.Error("failed to store task",
			slog.String("error", err.Error()),
			slog.String("user_id", callerID.String()))
		return nil, NewServiceError("create_task", "failed to store task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", callerID.String()))
	return task, nil
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(
	ctx context.Context,
	callerID uuid.UUID,
	q store.TaskQuery,
) (*store.TaskPage, error) {
	q = q.Normalize()

	tasks, total, err := s.tasks.List(ctx, callerID, q)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", callerID.String()))
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}

	return &store.TaskPage{
		Tasks:      tasks,
		Pagination: store.NewPagination(q, total),
	}, nil
}

// Get implements TaskService.Get.
func (s *taskServiceImpl) Get(ctx context.Context, callerID, taskID uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, s.lookupError(ctx, "get_task", taskID, err)
	}
	if !task.IsOwnedBy(callerID) {
		s.logNotOwned(ctx, callerID, taskID)
		return nil, ErrNotOwned
	}
	return task, nil
}

// Update implements TaskService.Update. The row is locked for the whole
// read-check-write sequence.
func (s *taskServiceImpl) Update(
	ctx context.Context,
	callerID, taskID uuid.UUID,
	patch domain.TaskPatch,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Task
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txTasks := s.tasks.WithTx(tx)

		task, err := txTasks.GetByIDForUpdate(ctx, taskID)
		if err != nil {
			return s.lookupError(ctx, "update_task", taskID, err)
		}
		if !task.IsOwnedBy(callerID) {
			s.logNotOwned(ctx, callerID, taskID)
			return ErrNotOwned
		}

		if err := task.ApplyPatch(patch, s.timeFunc()); err != nil {
			return err
		}

		if err := txTasks.Update(ctx, task); err != nil {
			if errors.Is(err, store.ErrTaskNotFound) {
				return err
			}
			return NewServiceError("update_task", "failed to store task", err)
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Debug("task updated",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", callerID.String()))
	return updated, nil
}

// Delete implements TaskService.Delete. Ownership is part of the DELETE
// statement; the follow-up lookup only decides which error to report.
func (s *taskServiceImpl) Delete(ctx context.Context, callerID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.tasks.Delete(ctx, taskID, callerID)
	if err == nil {
		log.Info("task deleted",
			slog.String("task_id", taskID.String()),
			slog.String("user_id", callerID.String()))
		return nil
	}
	if !errors.Is(err, store.ErrTaskNotFound) {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", taskID.String()))
		return NewServiceError("delete_task", "failed to delete task", err)
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		return s.lookupError(ctx, "delete_task", taskID, err)
	}
	s.logNotOwned(ctx, callerID, taskID)
	return ErrNotOwned
}

// lookupError passes ErrTaskNotFound through and wraps anything else.
func (s *taskServiceImpl) lookupError(ctx context.Context, op string, taskID uuid.UUID, err error) error {
	if errors.Is(err, store.ErrTaskNotFound) {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Error("failed to load task",
		slog.String("operation", op),
		slog.String("error", err.Error()),
		slog.String("task_id", taskID.String()))
	return NewServiceError(op, "failed to load task", err)
}

func (s *taskServiceImpl) logNotOwned(ctx context.Context, callerID, taskID uuid.UUID) {
	logger.FromContextOrDefault(ctx, s.logger).Warn("task access denied",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", callerID.String()))
}
