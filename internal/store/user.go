package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkawa95/studytask-api/internal/domain"
)

// UserStore defines the interface for user (credential) persistence.
type UserStore interface {
	// Create saves a new user to the store. The caller must have hashed
	// the password already; only HashedPassword is persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their (lowercased) email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete removes a user by ID. Owned subjects, tasks and history
	// entries are removed by the schema's cascading foreign keys.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
