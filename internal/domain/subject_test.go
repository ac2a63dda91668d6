package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubject(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("applies default color", func(t *testing.T) {
		t.Parallel()
		subject, err := NewSubject(ownerID, " Math ", nil, nil, "")
		require.NoError(t, err)

		assert.Equal(t, "Math", subject.Name)
		assert.Equal(t, DefaultSubjectColor, subject.Color)
		assert.Equal(t, ownerID, subject.OwnerID)
	})

	t.Run("keeps explicit color and trims teacher", func(t *testing.T) {
		t.Parallel()
		teacher := " Dr. Otero "
		subject, err := NewSubject(ownerID, "Physics", nil, &teacher, "#ff0000")
		require.NoError(t, err)

		assert.Equal(t, "#ff0000", subject.Color)
		require.NotNil(t, subject.Teacher)
		assert.Equal(t, "Dr. Otero", *subject.Teacher)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()
		_, err := NewSubject(ownerID, "   ", nil, nil, "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestSubjectApply(t *testing.T) {
	t.Parallel()

	subject, err := NewSubject(uuid.New(), "Math", nil, nil, "")
	require.NoError(t, err)

	name := "Algebra"
	color := "#00ff00"
	require.NoError(t, subject.Apply(SubjectPatch{Name: &name, Color: &color}))
	assert.Equal(t, "Algebra", subject.Name)
	assert.Equal(t, "#00ff00", subject.Color)

	empty := " "
	err = subject.Apply(SubjectPatch{Name: &empty})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Algebra", subject.Name)
}

func TestHistoryAction(t *testing.T) {
	t.Parallel()

	for _, action := range []HistoryAction{HistoryActionCreated, HistoryActionUpdated, HistoryActionCompleted, HistoryActionDeleted} {
		assert.True(t, action.Valid(), string(action))
	}
	assert.False(t, HistoryAction("archived").Valid())
}

func TestNewHistoryEntry(t *testing.T) {
	t.Parallel()

	entry, err := NewHistoryEntry(uuid.New(), uuid.New(), HistoryActionCreated)
	require.NoError(t, err)
	assert.False(t, entry.Timestamp.IsZero())

	_, err = NewHistoryEntry(uuid.New(), uuid.New(), HistoryAction("bogus"))
	assert.ErrorIs(t, err, ErrInvalidHistoryAction)

	_, err = NewHistoryEntry(uuid.Nil, uuid.New(), HistoryActionCreated)
	assert.ErrorIs(t, err, ErrInvalidID)
}
