package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/store"
)

// SubjectService coordinates subject persistence. Deleting a subject
// also removes its dependent tasks and their audit entries, all in one
// transaction.
type SubjectService interface {
	// ListSubjects returns all of the caller's subjects.
	ListSubjects(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error)

	// CreateSubject creates a subject for the caller. An empty color
	// falls back to the default.
	CreateSubject(ctx context.Context, ownerID uuid.UUID, name string, description, teacher *string, color string) (*domain.Subject, error)

	// UpdateSubject applies the patch to one of the caller's subjects.
	// Returns store.ErrSubjectNotFound when no row matches id and owner.
	UpdateSubject(ctx context.Context, ownerID, subjectID uuid.UUID, patch domain.SubjectPatch) (*domain.Subject, error)

	// DeleteSubject removes one of the caller's subjects together with
	// its tasks and their history entries. Returns
	// store.ErrSubjectNotFound when no row matches id and owner.
	DeleteSubject(ctx context.Context, ownerID, subjectID uuid.UUID) error
}

// subjectService implements SubjectService.
type subjectService struct {
	db           *sql.DB
	subjectStore store.SubjectStore
	taskStore    store.TaskStore
	historyStore store.HistoryStore
	logger       *slog.Logger
	runTx        txRunner
}

// NewSubjectService creates a SubjectService backed by the given stores.
func NewSubjectService(
	db *sql.DB,
	subjectStore store.SubjectStore,
	taskStore store.TaskStore,
	historyStore store.HistoryStore,
	logger *slog.Logger,
) SubjectService {
	if logger == nil {
		logger = slog.Default()
	}
	return &subjectService{
		db:           db,
		subjectStore: subjectStore,
		taskStore:    taskStore,
		historyStore: historyStore,
		logger:       logger.With("component", "subject_service"),
		runTx:        store.RunInTransaction,
	}
}

// ListSubjects returns all of the caller's subjects.
func (s *subjectService) ListSubjects(ctx context.Context, ownerID uuid.UUID) ([]*domain.Subject, error) {
	return s.subjectStore.List(ctx, ownerID)
}

// CreateSubject creates a subject for the caller.
func (s *subjectService) CreateSubject(ctx context.Context, ownerID uuid.UUID, name string, description, teacher *string, color string) (*domain.Subject, error) {
	subject, err := domain.NewSubject(ownerID, name, description, teacher, color)
	if err != nil {
		return nil, err
	}

	if err := s.subjectStore.Create(ctx, subject); err != nil {
		return nil, err
	}

	s.logger.Info("subject created",
		"subject_id", subject.ID,
		"owner_id", ownerID)
	return subject, nil
}

// UpdateSubject applies the patch to one of the caller's subjects.
func (s *subjectService) UpdateSubject(ctx context.Context, ownerID, subjectID uuid.UUID, patch domain.SubjectPatch) (*domain.Subject, error) {
	subject, err := s.subjectStore.GetByID(ctx, ownerID, subjectID)
	if err != nil {
		return nil, err
	}

	if err := subject.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.subjectStore.Update(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

// DeleteSubject removes the subject and everything hanging off it. Task
// rows referencing the subject go first, then their history entries,
// then the subject itself, so no dependent data survives the subject.
func (s *subjectService) DeleteSubject(ctx context.Context, ownerID, subjectID uuid.UUID) error {
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		subjectStore := s.subjectStore.WithTx(tx)
		taskStore := s.taskStore.WithTx(tx)
		historyStore := s.historyStore.WithTx(tx)

		if _, err := subjectStore.GetByID(ctx, ownerID, subjectID); err != nil {
			return err
		}

		taskIDs, err := taskStore.ListIDsBySubject(ctx, ownerID, subjectID)
		if err != nil {
			return err
		}

		if err := historyStore.DeleteByTasks(ctx, taskIDs); err != nil {
			return err
		}

		if err := taskStore.DeleteBySubject(ctx, ownerID, subjectID); err != nil {
			return err
		}

		return subjectStore.Delete(ctx, ownerID, subjectID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("subject deleted",
		"subject_id", subjectID,
		"owner_id", ownerID)
	return nil
}
