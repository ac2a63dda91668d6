package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/store"
)

// TaskService coordinates task persistence with the audit log. Every
// mutating operation appends its history entry inside the same database
// transaction as the task write, so the trail can never diverge from the
// data.
type TaskService interface {
	// ListTasks returns the caller's tasks matching the filter.
	ListTasks(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)

	// CreateTask creates a task and records a "created" entry. When a
	// subject reference is provided it must resolve to a subject owned
	// by the same user; otherwise ErrSubjectNotOwned is returned.
	CreateTask(ctx context.Context, ownerID uuid.UUID, title, priority string, dueDate time.Time, subjectID *uuid.UUID, description, image *string) (*domain.Task, error)

	// UpdateTask applies the patch to one of the caller's tasks and
	// records an "updated" entry. Returns store.ErrTaskNotFound when no
	// row matches id and owner.
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error)

	// CompleteTask marks one of the caller's tasks completed and records
	// a "completed" entry. Idempotent: a second call leaves the task
	// completed and appends another entry.
	CompleteTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// DeleteTask removes one of the caller's tasks, replaces its history
	// with a single "deleted" entry, and returns store.ErrTaskNotFound
	// when no row matches id and owner.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// txRunner executes a function inside a database transaction. Tests
// substitute a runner that skips the real transaction machinery.
type txRunner func(ctx context.Context, db *sql.DB, fn store.TxFn) error

// taskService implements TaskService.
type taskService struct {
	db           *sql.DB
	taskStore    store.TaskStore
	subjectStore store.SubjectStore
	historyStore store.HistoryStore
	logger       *slog.Logger
	runTx        txRunner
}

// NewTaskService creates a TaskService backed by the given stores.
func NewTaskService(
	db *sql.DB,
	taskStore store.TaskStore,
	subjectStore store.SubjectStore,
	historyStore store.HistoryStore,
	logger *slog.Logger,
) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		db:           db,
		taskStore:    taskStore,
		subjectStore: subjectStore,
		historyStore: historyStore,
		logger:       logger.With("component", "task_service"),
		runTx:        store.RunInTransaction,
	}
}

// ListTasks returns the caller's tasks matching the filter.
func (s *taskService) ListTasks(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error) {
	return s.taskStore.List(ctx, ownerID, filter)
}

// checkSubjectOwnership verifies that subjectID resolves to a subject
// owned by ownerID. A miss (including another user's subject) maps to
// ErrSubjectNotOwned.
func (s *taskService) checkSubjectOwnership(ctx context.Context, subjectStore store.SubjectStore, ownerID uuid.UUID, subjectID *uuid.UUID) error {
	if subjectID == nil {
		return nil
	}

	if _, err := subjectStore.GetByID(ctx, ownerID, *subjectID); err != nil {
		if errors.Is(err, store.ErrSubjectNotFound) {
			return ErrSubjectNotOwned
		}
		return err
	}
	return nil
}

// CreateTask creates a task and records a "created" audit entry in one
// transaction.
func (s *taskService) CreateTask(ctx context.Context, ownerID uuid.UUID, title, priority string, dueDate time.Time, subjectID *uuid.UUID, description, image *string) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, title, priority, dueDate, subjectID, description, image)
	if err != nil {
		return nil, err
	}

	err = s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		subjectStore := s.subjectStore.WithTx(tx)
		historyStore := s.historyStore.WithTx(tx)

		if err := s.checkSubjectOwnership(ctx, subjectStore, ownerID, subjectID); err != nil {
			return err
		}

		if err := taskStore.Create(ctx, task); err != nil {
			return err
		}

		return s.appendHistory(ctx, historyStore, ownerID, task.ID, domain.HistoryActionCreated)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"owner_id", ownerID)
	return task, nil
}

// UpdateTask applies the patch and records an "updated" audit entry in
// one transaction.
func (s *taskService) UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, patch domain.TaskPatch) (*domain.Task, error) {
	var updated *domain.Task

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		subjectStore := s.subjectStore.WithTx(tx)
		historyStore := s.historyStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, ownerID, taskID)
		if err != nil {
			return err
		}

		if err := s.checkSubjectOwnership(ctx, subjectStore, ownerID, patch.SubjectID); err != nil {
			return err
		}

		if err := task.Apply(patch); err != nil {
			return err
		}

		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return s.appendHistory(ctx, historyStore, ownerID, task.ID, domain.HistoryActionUpdated)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CompleteTask marks the task completed and records a "completed" audit
// entry in one transaction.
func (s *taskService) CompleteTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error) {
	var completed *domain.Task

	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		historyStore := s.historyStore.WithTx(tx)

		task, err := taskStore.GetByID(ctx, ownerID, taskID)
		if err != nil {
			return err
		}

		task.Completed = true
		if err := taskStore.Update(ctx, task); err != nil {
			return err
		}

		completed = task
		return s.appendHistory(ctx, historyStore, ownerID, task.ID, domain.HistoryActionCompleted)
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}

// DeleteTask removes the task. Prior audit entries for the task are
// cleared and replaced with a single "deleted" entry, all in one
// transaction, so a deleted task leaves exactly one trace.
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		taskStore := s.taskStore.WithTx(tx)
		historyStore := s.historyStore.WithTx(tx)

		if err := taskStore.Delete(ctx, ownerID, taskID); err != nil {
			return err
		}

		if err := historyStore.DeleteByTask(ctx, taskID); err != nil {
			return err
		}

		return s.appendHistory(ctx, historyStore, ownerID, taskID, domain.HistoryActionDeleted)
	})
	if err != nil {
		return err
	}

	s.logger.Info("task deleted",
		"task_id", taskID,
		"owner_id", ownerID)
	return nil
}

// appendHistory creates and appends an audit entry.
func (s *taskService) appendHistory(ctx context.Context, historyStore store.HistoryStore, ownerID, taskID uuid.UUID, action domain.HistoryAction) error {
	entry, err := domain.NewHistoryEntry(ownerID, taskID, action)
	if err != nil {
		return fmt.Errorf("failed to build history entry: %w", err)
	}
	return historyStore.Append(ctx, entry)
}
