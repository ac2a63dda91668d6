package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/store"
)

// MockHistoryStore implements store.HistoryStore for testing
type MockHistoryStore struct {
	// Function fields for customizable behavior
	AppendFn        func(ctx context.Context, entry *domain.HistoryEntry) error
	ListByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error)
	DeleteByTaskFn  func(ctx context.Context, taskID uuid.UUID) error
	DeleteByTasksFn func(ctx context.Context, taskIDs []uuid.UUID) error

	// Data for default implementation, in append order
	Entries []*domain.HistoryEntry
}

// NewMockHistoryStore creates a new mock store with initialized defaults
func NewMockHistoryStore() *MockHistoryStore {
	return &MockHistoryStore{}
}

// Append implements the HistoryStore interface
func (m *MockHistoryStore) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, entry)
	}

	m.Entries = append(m.Entries, entry)
	return nil
}

// ListByUser implements the HistoryStore interface. Entries are returned
// newest first, matching the real store's ordering.
func (m *MockHistoryStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.HistoryEntry, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	entries := []*domain.HistoryEntry{}
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].UserID == userID {
			entries = append(entries, m.Entries[i])
		}
	}
	return entries, nil
}

// DeleteByTask implements the HistoryStore interface
func (m *MockHistoryStore) DeleteByTask(ctx context.Context, taskID uuid.UUID) error {
	if m.DeleteByTaskFn != nil {
		return m.DeleteByTaskFn(ctx, taskID)
	}

	kept := m.Entries[:0]
	for _, entry := range m.Entries {
		if entry.TaskID != taskID {
			kept = append(kept, entry)
		}
	}
	m.Entries = kept
	return nil
}

// DeleteByTasks implements the HistoryStore interface
func (m *MockHistoryStore) DeleteByTasks(ctx context.Context, taskIDs []uuid.UUID) error {
	if m.DeleteByTasksFn != nil {
		return m.DeleteByTasksFn(ctx, taskIDs)
	}

	for _, id := range taskIDs {
		if err := m.DeleteByTask(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// WithTx implements the HistoryStore interface for transaction support
func (m *MockHistoryStore) WithTx(tx *sql.Tx) store.HistoryStore {
	// For mock purposes, just return the same mock
	return m
}
