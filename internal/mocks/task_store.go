package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	ListFn             func(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error)
	GetByIDFn          func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)
	CreateFn           func(ctx context.Context, task *domain.Task) error
	UpdateFn           func(ctx context.Context, task *domain.Task) error
	DeleteFn           func(ctx context.Context, ownerID, id uuid.UUID) error
	ListIDsBySubjectFn func(ctx context.Context, ownerID, subjectID uuid.UUID) ([]uuid.UUID, error)
	DeleteBySubjectFn  func(ctx context.Context, ownerID, subjectID uuid.UUID) error

	// Data for default implementation, keyed by task ID
	Tasks map[uuid.UUID]*domain.Task
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context, ownerID uuid.UUID, filter store.TaskFilter) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, filter)
	}

	tasks := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.OwnerID != ownerID {
			continue
		}
		switch filter {
		case store.TaskFilterActive:
			if task.Completed {
				continue
			}
		case store.TaskFilterCompleted:
			if !task.Completed {
				continue
			}
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	task, exists := m.Tasks[id]
	if !exists || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.Tasks[task.ID] = task
	return nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.OwnerID != task.OwnerID {
		return store.ErrTaskNotFound
	}
	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	task, exists := m.Tasks[id]
	if !exists || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// ListIDsBySubject implements the TaskStore interface
func (m *MockTaskStore) ListIDsBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) ([]uuid.UUID, error) {
	if m.ListIDsBySubjectFn != nil {
		return m.ListIDsBySubjectFn(ctx, ownerID, subjectID)
	}

	var ids []uuid.UUID
	for _, task := range m.Tasks {
		if task.OwnerID == ownerID && task.SubjectID != nil && *task.SubjectID == subjectID {
			ids = append(ids, task.ID)
		}
	}
	return ids, nil
}

// DeleteBySubject implements the TaskStore interface
func (m *MockTaskStore) DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) error {
	if m.DeleteBySubjectFn != nil {
		return m.DeleteBySubjectFn(ctx, ownerID, subjectID)
	}

	for id, task := range m.Tasks {
		if task.OwnerID == ownerID && task.SubjectID != nil && *task.SubjectID == subjectID {
			delete(m.Tasks, id)
		}
	}
	return nil
}

// WithTx implements the TaskStore interface for transaction support
func (m *MockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	// For mock purposes, just return the same mock
	return m
}
