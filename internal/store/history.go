package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkawa95/studytask-api/internal/domain"
)

// HistoryStore defines the interface for the append-only task audit log.
type HistoryStore interface {
	// Append inserts a new audit entry. Entries are never updated.
	Append(ctx context.Context, entry *domain.HistoryEntry) error

	// ListByUser returns the user's audit entries ordered by timestamp
	// descending.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error)

	// DeleteByTask removes all entries for a task. Called inside the
	// task-deletion transaction before the final "deleted" entry is
	// appended.
	DeleteByTask(ctx context.Context, taskID uuid.UUID) error

	// DeleteByTasks removes all entries for the given tasks. Used when a
	// subject deletion cascades to its tasks.
	DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error

	// WithTx returns a HistoryStore bound to the provided transaction.
	WithTx(tx *sql.Tx) HistoryStore
}
