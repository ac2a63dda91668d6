package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkawa95/studytask-api/internal/domain"
)

// SubjectStore defines the interface for subject persistence, scoped by
// the owning user the same way TaskStore is.
type SubjectStore interface {
	// List returns all of the owner's subjects, by name.
	List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error)

	// GetByID retrieves one of the owner's subjects.
	// Returns ErrSubjectNotFound when no row matches both id and owner.
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Subject, error)

	// Create saves a new subject.
	Create(ctx context.Context, subject *domain.Subject) error

	// Update persists the subject's current field values for the row
	// matching both subject.ID and subject.OwnerID.
	// Returns ErrSubjectNotFound when no such row exists.
	Update(ctx context.Context, subject *domain.Subject) error

	// Delete removes one of the owner's subjects. Dependent tasks are
	// removed by the service layer within the same transaction.
	// Returns ErrSubjectNotFound when no row matches both id and owner.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// WithTx returns a SubjectStore bound to the provided transaction.
	WithTx(tx *sql.Tx) SubjectStore
}
