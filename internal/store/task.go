package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkawa95/studytask-api/internal/domain"
)

// TaskFilter restricts a task listing by completion state.
type TaskFilter int

// Task listing filters.
const (
	TaskFilterAll TaskFilter = iota
	TaskFilterActive
	TaskFilterCompleted
)

// TaskStore defines the interface for task persistence. Every method is
// scoped by the owning user: the owner ID is part of the SQL predicate,
// never a post-fetch check, so another user's rows can never surface.
type TaskStore interface {
	// List returns the owner's tasks matching the filter, newest first.
	List(ctx context.Context, ownerID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves one of the owner's tasks.
	// Returns ErrTaskNotFound when no row matches both id and owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Task, error)

	// Create saves a new task.
	Create(ctx context.Context, task *domain.Task) error

	// Update persists the task's current field values for the row
	// matching both task.ID and task.OwnerID.
	// Returns ErrTaskNotFound when no such row exists.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes one of the owner's tasks.
	// Returns ErrTaskNotFound when no row matches both id and owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// ListIDsBySubject returns the IDs of the owner's tasks attached to
	// the given subject. Used when cascading a subject deletion.
	ListIDsBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) ([]uuid.UUID, error)

	// DeleteBySubject removes all of the owner's tasks attached to the
	// given subject.
	DeleteBySubject(ctx context.Context, ownerID, subjectID uuid.UUID) error

	// WithTx returns a TaskStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
