package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	dueDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates task with defaults", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(ownerID, "  Essay  ", "high", dueDate, nil, nil, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, ownerID, task.OwnerID)
		assert.Equal(t, "Essay", task.Title)
		assert.Equal(t, "high", task.Priority)
		assert.False(t, task.Completed)
		assert.Nil(t, task.SubjectID)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name     string
			owner    uuid.UUID
			title    string
			priority string
			due      time.Time
		}{
			{"missing owner", uuid.Nil, "Essay", "high", dueDate},
			{"missing title", ownerID, "   ", "high", dueDate},
			{"missing priority", ownerID, "Essay", "", dueDate},
			{"missing due date", ownerID, "Essay", "high", time.Time{}},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := NewTask(tt.owner, tt.title, tt.priority, tt.due, nil, nil, nil)
				assert.Error(t, err)
			})
		}
	})
}

func TestTaskApply(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	dueDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	newTask := func(t *testing.T) *Task {
		t.Helper()
		task, err := NewTask(ownerID, "Essay", "high", dueDate, nil, nil, nil)
		require.NoError(t, err)
		return task
	}

	t.Run("patches only provided fields", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		title := "Revised essay"

		require.NoError(t, task.Apply(TaskPatch{Title: &title}))

		assert.Equal(t, "Revised essay", task.Title)
		assert.Equal(t, "high", task.Priority)
		assert.Equal(t, dueDate, task.DueDate)
		assert.False(t, task.Completed)
	})

	t.Run("patches completion flag", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		completed := true

		require.NoError(t, task.Apply(TaskPatch{Completed: &completed}))
		assert.True(t, task.Completed)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		empty := "  "

		err := task.Apply(TaskPatch{Title: &empty})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, "Essay", task.Title)
	})

	t.Run("rejects empty priority", func(t *testing.T) {
		t.Parallel()
		task := newTask(t)
		empty := ""

		err := task.Apply(TaskPatch{Priority: &empty})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
