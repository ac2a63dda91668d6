package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryAction is the tag recorded for a task mutation.
type HistoryAction string

// Known history actions. The audit trail never records anything else.
const (
	HistoryActionCreated   HistoryAction = "created"
	HistoryActionUpdated   HistoryAction = "updated"
	HistoryActionCompleted HistoryAction = "completed"
	HistoryActionDeleted   HistoryAction = "deleted"
)

// Valid reports whether the action is one of the known tags.
func (a HistoryAction) Valid() bool {
	switch a {
	case HistoryActionCreated, HistoryActionUpdated, HistoryActionCompleted, HistoryActionDeleted:
		return true
	}
	return false
}

// HistoryEntry is one row of the append-only task audit log. Entries are
// never mutated; they are removed only when the owning user is deleted,
// or replaced by a single "deleted" entry when their task is deleted.
type HistoryEntry struct {
	ID        uuid.UUID     `json:"-"`
	TaskID    uuid.UUID     `json:"task_id"`
	UserID    uuid.UUID     `json:"-"`
	Action    HistoryAction `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewHistoryEntry creates an audit entry with a server-assigned timestamp.
func NewHistoryEntry(userID, taskID uuid.UUID, action HistoryAction) (*HistoryEntry, error) {
	entry := &HistoryEntry{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks the entry's references and action tag.
func (e *HistoryEntry) Validate() error {
	if e.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if e.TaskID == uuid.Nil {
		return NewValidationError("task_id", "cannot be empty", ErrInvalidID)
	}
	if e.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrInvalidID)
	}
	if !e.Action.Valid() {
		return NewValidationError("action", "must be one of created/updated/completed/deleted", ErrInvalidHistoryAction)
	}
	return nil
}
