package domain

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultSubjectColor is the tag color assigned when a subject is created
// without an explicit color.
const DefaultSubjectColor = "#38bdf8"

// Subject represents a study subject (a course) that tasks can be grouped
// under. Every subject belongs to exactly one user; ownership never
// changes after creation.
type Subject struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Teacher     *string   `json:"teacher,omitempty"`
	Color       string    `json:"color"`
}

// SubjectPatch enumerates the subject fields a partial update may change.
// A nil field leaves the stored value untouched.
type SubjectPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Teacher     *string `json:"teacher,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// NewSubject creates a subject owned by ownerID. The name is required and
// trimmed; teacher is trimmed when present; the color falls back to
// DefaultSubjectColor.
func NewSubject(ownerID uuid.UUID, name string, description, teacher *string, color string) (*Subject, error) {
	if teacher != nil {
		trimmed := strings.TrimSpace(*teacher)
		teacher = &trimmed
	}
	if color == "" {
		color = DefaultSubjectColor
	}

	subject := &Subject{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(name),
		Description: description,
		Teacher:     teacher,
		Color:       color,
	}

	if err := subject.Validate(); err != nil {
		return nil, err
	}

	return subject, nil
}

// Validate checks the subject's required fields.
func (s *Subject) Validate() error {
	if s.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if s.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty", ErrInvalidID)
	}
	if s.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrValidation)
	}
	return nil
}

// Apply copies the non-nil patch fields onto the subject. The name is
// rejected when it trims to an empty string.
func (s *Subject) Apply(patch SubjectPatch) error {
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return NewValidationError("name", "cannot be empty", ErrValidation)
		}
		s.Name = name
	}
	if patch.Description != nil {
		s.Description = patch.Description
	}
	if patch.Teacher != nil {
		s.Teacher = patch.Teacher
	}
	if patch.Color != nil {
		s.Color = *patch.Color
	}
	return nil
}
