package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/mocks"
	"github.com/pkawa95/studytask-api/internal/store"
)

func newTestSubjectService(
	subjectStore store.SubjectStore,
	taskStore store.TaskStore,
	historyStore store.HistoryStore,
) *subjectService {
	svc := NewSubjectService(nil, subjectStore, taskStore, historyStore, nil).(*subjectService)
	svc.runTx = passthroughTxRunner
	return svc
}

func TestSubjectService_CreateSubject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("empty color falls back to default", func(t *testing.T) {
		t.Parallel()

		subjectStore := mocks.NewMockSubjectStore()
		svc := newTestSubjectService(subjectStore, mocks.NewMockTaskStore(), mocks.NewMockHistoryStore())

		subject, err := svc.CreateSubject(ctx, ownerID, "Physics", nil, nil, "")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSubjectColor, subject.Color)
		assert.Contains(t, subjectStore.Subjects, subject.ID)
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestSubjectService(
			mocks.NewMockSubjectStore(), mocks.NewMockTaskStore(), mocks.NewMockHistoryStore())

		_, err := svc.CreateSubject(ctx, ownerID, "   ", nil, nil, "#ff0000")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestSubjectService_UpdateSubject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("partial patch leaves other fields untouched", func(t *testing.T) {
		t.Parallel()

		subjectStore := mocks.NewMockSubjectStore()
		svc := newTestSubjectService(subjectStore, mocks.NewMockTaskStore(), mocks.NewMockHistoryStore())

		teacher := "Dr. Nowak"
		subject, err := domain.NewSubject(ownerID, "Chemistry", nil, &teacher, "#ff0000")
		require.NoError(t, err)
		subjectStore.Subjects[subject.ID] = subject

		newName := "Organic Chemistry"
		updated, err := svc.UpdateSubject(ctx, ownerID, subject.ID, domain.SubjectPatch{Name: &newName})
		require.NoError(t, err)

		assert.Equal(t, "Organic Chemistry", updated.Name)
		assert.Equal(t, "#ff0000", updated.Color)
		require.NotNil(t, updated.Teacher)
		assert.Equal(t, "Dr. Nowak", *updated.Teacher)
	})

	t.Run("another user's subject reads as not found", func(t *testing.T) {
		t.Parallel()

		subjectStore := mocks.NewMockSubjectStore()
		svc := newTestSubjectService(subjectStore, mocks.NewMockTaskStore(), mocks.NewMockHistoryStore())

		subject, err := domain.NewSubject(ownerID, "Chemistry", nil, nil, "")
		require.NoError(t, err)
		subjectStore.Subjects[subject.ID] = subject

		newName := "Hijack"
		_, err = svc.UpdateSubject(ctx, uuid.New(), subject.ID, domain.SubjectPatch{Name: &newName})
		assert.ErrorIs(t, err, store.ErrSubjectNotFound)
	})
}

func TestSubjectService_DeleteSubject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()
	dueDate := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	t.Run("delete cascades to tasks and their history", func(t *testing.T) {
		t.Parallel()

		subjectStore := mocks.NewMockSubjectStore()
		taskStore := mocks.NewMockTaskStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestSubjectService(subjectStore, taskStore, historyStore)

		subject, err := domain.NewSubject(ownerID, "Biology", nil, nil, "")
		require.NoError(t, err)
		subjectStore.Subjects[subject.ID] = subject

		attached, err := domain.NewTask(ownerID, "Dissection prep", "high", dueDate, &subject.ID, nil, nil)
		require.NoError(t, err)
		taskStore.Tasks[attached.ID] = attached

		unrelated, err := domain.NewTask(ownerID, "Unrelated errand", "low", dueDate, nil, nil, nil)
		require.NoError(t, err)
		taskStore.Tasks[unrelated.ID] = unrelated

		entry, err := domain.NewHistoryEntry(ownerID, attached.ID, domain.HistoryActionCreated)
		require.NoError(t, err)
		require.NoError(t, historyStore.Append(ctx, entry))

		require.NoError(t, svc.DeleteSubject(ctx, ownerID, subject.ID))

		assert.NotContains(t, subjectStore.Subjects, subject.ID)
		assert.NotContains(t, taskStore.Tasks, attached.ID)
		assert.Contains(t, taskStore.Tasks, unrelated.ID)
		assert.Empty(t, historyStore.Entries)
	})

	t.Run("another user's subject reads as not found", func(t *testing.T) {
		t.Parallel()

		subjectStore := mocks.NewMockSubjectStore()
		svc := newTestSubjectService(subjectStore, mocks.NewMockTaskStore(), mocks.NewMockHistoryStore())

		subject, err := domain.NewSubject(ownerID, "Biology", nil, nil, "")
		require.NoError(t, err)
		subjectStore.Subjects[subject.ID] = subject

		err = svc.DeleteSubject(ctx, uuid.New(), subject.ID)
		assert.ErrorIs(t, err, store.ErrSubjectNotFound)
		assert.Contains(t, subjectStore.Subjects, subject.ID)
	})
}
