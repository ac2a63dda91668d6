package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item. Every task belongs to exactly one
// user and optionally one of that user's subjects. Ownership never
// changes after creation.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     uuid.UUID  `json:"-"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"` // base64 payload or URL
	Priority    string     `json:"priority"`
	DueDate     time.Time  `json:"due_date"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskPatch enumerates the task fields a partial update may change.
// A nil field leaves the stored value untouched. Completed is included
// because the generic update endpoint may flip a task back to active.
type TaskPatch struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// NewTask creates a task owned by ownerID with completed defaulting to
// false and a server-assigned creation timestamp.
func NewTask(ownerID uuid.UUID, title, priority string, dueDate time.Time, subjectID *uuid.UUID, description, image *string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		SubjectID:   subjectID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Image:       image,
		Priority:    priority,
		DueDate:     dueDate,
		Completed:   false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task's required fields.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if t.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty", ErrInvalidID)
	}
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if t.Priority == "" {
		return NewValidationError("priority", "cannot be empty", ErrValidation)
	}
	if t.DueDate.IsZero() {
		return NewValidationError("due_date", "cannot be empty", ErrValidation)
	}
	return nil
}

// Apply copies the non-nil patch fields onto the task. The title is
// rejected when it trims to an empty string.
func (t *Task) Apply(patch TaskPatch) error {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return NewValidationError("title", "cannot be empty", ErrValidation)
		}
		t.Title = title
	}
	if patch.Description != nil {
		t.Description = patch.Description
	}
	if patch.Image != nil {
		t.Image = patch.Image
	}
	if patch.Priority != nil {
		if *patch.Priority == "" {
			return NewValidationError("priority", "cannot be empty", ErrValidation)
		}
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.SubjectID != nil {
		t.SubjectID = patch.SubjectID
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	return nil
}
