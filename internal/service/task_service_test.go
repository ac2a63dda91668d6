package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkawa95/studytask-api/internal/domain"
	"github.com/pkawa95/studytask-api/internal/mocks"
	"github.com/pkawa95/studytask-api/internal/store"
)

// passthroughTxRunner invokes the transaction function directly with a
// nil transaction. The mock stores return themselves from WithTx, so no
// real database is needed.
func passthroughTxRunner(ctx context.Context, db *sql.DB, fn store.TxFn) error {
	return fn(ctx, nil)
}

func newTestTaskService(
	taskStore store.TaskStore,
	subjectStore store.SubjectStore,
	historyStore store.HistoryStore,
) *taskService {
	svc := NewTaskService(nil, taskStore, subjectStore, historyStore, nil).(*taskService)
	svc.runTx = passthroughTxRunner
	return svc
}

func mustCreateSubject(t *testing.T, ownerID uuid.UUID) *domain.Subject {
	t.Helper()
	subject, err := domain.NewSubject(ownerID, "Mathematics", nil, nil, "")
	require.NoError(t, err)
	return subject
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("creates task and appends created entry", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		subjectStore := mocks.NewMockSubjectStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, subjectStore, historyStore)

		task, err := svc.CreateTask(ctx, ownerID, "Read chapter 4", "high", dueDate, nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, ownerID, task.OwnerID)
		assert.False(t, task.Completed)
		assert.Contains(t, taskStore.Tasks, task.ID)

		require.Len(t, historyStore.Entries, 1)
		assert.Equal(t, domain.HistoryActionCreated, historyStore.Entries[0].Action)
		assert.Equal(t, task.ID, historyStore.Entries[0].TaskID)
		assert.Equal(t, ownerID, historyStore.Entries[0].UserID)
	})

	t.Run("accepts task referencing own subject", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		subjectStore := mocks.NewMockSubjectStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, subjectStore, historyStore)

		subject := mustCreateSubject(t, ownerID)
		subjectStore.Subjects[subject.ID] = subject

		task, err := svc.CreateTask(ctx, ownerID, "Homework", "low", dueDate, &subject.ID, nil, nil)
		require.NoError(t, err)
		require.NotNil(t, task.SubjectID)
		assert.Equal(t, subject.ID, *task.SubjectID)
	})

	t.Run("rejects subject owned by another user", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		subjectStore := mocks.NewMockSubjectStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, subjectStore, historyStore)

		otherOwner := uuid.New()
		subject := mustCreateSubject(t, otherOwner)
		subjectStore.Subjects[subject.ID] = subject

		_, err := svc.CreateTask(ctx, ownerID, "Homework", "low", dueDate, &subject.ID, nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSubjectNotOwned)
		assert.ErrorIs(t, err, domain.ErrValidation)

		assert.Empty(t, taskStore.Tasks)
		assert.Empty(t, historyStore.Entries)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()

		svc := newTestTaskService(
			mocks.NewMockTaskStore(), mocks.NewMockSubjectStore(), mocks.NewMockHistoryStore())

		_, err := svc.CreateTask(ctx, ownerID, "   ", "high", dueDate, nil, nil, nil)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	newTask := func(t *testing.T) *domain.Task {
		t.Helper()
		task, err := domain.NewTask(ownerID, "Original title", "medium", dueDate, nil, nil, nil)
		require.NoError(t, err)
		return task
	}

	t.Run("partial patch leaves other fields untouched", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, mocks.NewMockSubjectStore(), historyStore)

		task := newTask(t)
		taskStore.Tasks[task.ID] = task

		newTitle := "Renamed"
		updated, err := svc.UpdateTask(ctx, ownerID, task.ID, domain.TaskPatch{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "medium", updated.Priority)
		assert.Equal(t, dueDate, updated.DueDate)
		assert.False(t, updated.Completed)

		require.Len(t, historyStore.Entries, 1)
		assert.Equal(t, domain.HistoryActionUpdated, historyStore.Entries[0].Action)
	})

	t.Run("another user's task reads as not found", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, mocks.NewMockSubjectStore(), historyStore)

		task := newTask(t)
		taskStore.Tasks[task.ID] = task

		newTitle := "Hijack"
		_, err := svc.UpdateTask(ctx, uuid.New(), task.ID, domain.TaskPatch{Title: &newTitle})
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
		assert.Empty(t, historyStore.Entries)
	})

	t.Run("rejects patch pointing at foreign subject", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		subjectStore := mocks.NewMockSubjectStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, subjectStore, historyStore)

		task := newTask(t)
		taskStore.Tasks[task.ID] = task

		foreignSubject := mustCreateSubject(t, uuid.New())
		subjectStore.Subjects[foreignSubject.ID] = foreignSubject

		_, err := svc.UpdateTask(ctx, ownerID, task.ID, domain.TaskPatch{SubjectID: &foreignSubject.ID})
		assert.ErrorIs(t, err, ErrSubjectNotOwned)
		assert.Empty(t, historyStore.Entries)
	})
}

func TestTaskService_CompleteTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("marking done twice stays done and appends two entries", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, mocks.NewMockSubjectStore(), historyStore)

		task, err := domain.NewTask(ownerID, "Essay", "high", dueDate, nil, nil, nil)
		require.NoError(t, err)
		taskStore.Tasks[task.ID] = task

		first, err := svc.CompleteTask(ctx, ownerID, task.ID)
		require.NoError(t, err)
		assert.True(t, first.Completed)

		second, err := svc.CompleteTask(ctx, ownerID, task.ID)
		require.NoError(t, err)
		assert.True(t, second.Completed)

		require.Len(t, historyStore.Entries, 2)
		for _, entry := range historyStore.Entries {
			assert.Equal(t, domain.HistoryActionCompleted, entry.Action)
		}
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestTaskService(
			mocks.NewMockTaskStore(), mocks.NewMockSubjectStore(), mocks.NewMockHistoryStore())

		_, err := svc.CompleteTask(ctx, ownerID, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ownerID := uuid.New()
	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	t.Run("delete replaces history with single deleted entry", func(t *testing.T) {
		t.Parallel()

		taskStore := mocks.NewMockTaskStore()
		historyStore := mocks.NewMockHistoryStore()
		svc := newTestTaskService(taskStore, mocks.NewMockSubjectStore(), historyStore)

		task, err := domain.NewTask(ownerID, "Lab report", "high", dueDate, nil, nil, nil)
		require.NoError(t, err)
		taskStore.Tasks[task.ID] = task

		created, err := domain.NewHistoryEntry(ownerID, task.ID, domain.HistoryActionCreated)
		require.NoError(t, err)
		require.NoError(t, historyStore.Append(ctx, created))

		require.NoError(t, svc.DeleteTask(ctx, ownerID, task.ID))

		assert.NotContains(t, taskStore.Tasks, task.ID)
		require.Len(t, historyStore.Entries, 1)
		assert.Equal(t, domain.HistoryActionDeleted, historyStore.Entries[0].Action)
		assert.Equal(t, task.ID, historyStore.Entries[0].TaskID)
	})

	t.Run("unknown task returns not found", func(t *testing.T) {
		t.Parallel()

		svc := newTestTaskService(
			mocks.NewMockTaskStore(), mocks.NewMockSubjectStore(), mocks.NewMockHistoryStore())

		err := svc.DeleteTask(ctx, ownerID, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}
