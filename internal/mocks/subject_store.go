package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/store"
)

// MockSubjectStore implements store.SubjectStore for testing
type MockSubjectStore struct {
	// Function fields for customizable behavior
	ListFn    func(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error)
	GetByIDFn func(ctx context.Context, ownerID, id uuid.UUID) (*domain.Subject, error)
	CreateFn  func(ctx context.Context, subject *domain.Subject) error
	UpdateFn  func(ctx context.Context, subject *domain.Subject) error
	DeleteFn  func(ctx context.Context, ownerID, id uuid.UUID) error

	// Data for default implementation, keyed by subject ID
	Subjects map[uuid.UUID]*domain.Subject
}

// NewMockSubjectStore creates a new mock store with initialized defaults
func NewMockSubjectStore() *MockSubjectStore {
	return &MockSubjectStore{
		Subjects: make(map[uuid.UUID]*domain.Subject),
	}
}

// List implements the SubjectStore interface
func (m *MockSubjectStore) List(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}

	subjects := []*domain.Subject{}
	for _, subject := range m.Subjects {
		if subject.OwnerID == ownerID {
			subjects = append(subjects, subject)
		}
	}
	return subjects, nil
}

// GetByID implements the SubjectStore interface
func (m *MockSubjectStore) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Subject, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	subject, exists := m.Subjects[id]
	if !exists || subject.OwnerID != ownerID {
		return nil, store.ErrSubjectNotFound
	}
	return subject, nil
}

// Create implements the SubjectStore interface
func (m *MockSubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, subject)
	}

	m.Subjects[subject.ID] = subject
	return nil
}

// Update implements the SubjectStore interface
func (m *MockSubjectStore) Update(ctx context.Context, subject *domain.Subject) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, subject)
	}

	existing, exists := m.Subjects[subject.ID]
	if !exists || existing.OwnerID != subject.OwnerID {
		return store.ErrSubjectNotFound
	}
	m.Subjects[subject.ID] = subject
	return nil
}

// Delete implements the SubjectStore interface
func (m *MockSubjectStore) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	subject, exists := m.Subjects[id]
	if !exists || subject.OwnerID != ownerID {
		return store.ErrSubjectNotFound
	}
	delete(m.Subjects, id)
	return nil
}

// WithTx implements the SubjectStore interface for transaction support
func (m *MockSubjectStore) WithTx(tx *sql.Tx) store.SubjectStore {
	// For mock purposes, just return the same mock
	return m
}
