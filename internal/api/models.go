package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkawa95/studytask-api/internal/domain"
)

// Common request/response structures

// dueDateLayout is the wire format for task due dates.
const dueDateLayout = "2006-01-02"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName       string `json:"first_name"       validate:"required"`
	LastName        string `json:"last_name"        validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=1,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// AccessToken is the JWT used for API authorization
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`
}

// UserResponse defines the caller profile returned by /whoami.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// NewUserResponse builds a UserResponse from a domain user.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// SubjectRequest defines the payload for subject creation.
type SubjectRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Teacher     *string `json:"teacher"`
	Color       string  `json:"color"`
}

// SubjectResponse defines the subject representation returned to clients.
type SubjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Teacher     *string   `json:"teacher"`
	Color       string    `json:"color"`
}

// NewSubjectResponse builds a SubjectResponse from a domain subject.
func NewSubjectResponse(subject *domain.Subject) SubjectResponse {
	return SubjectResponse{
		ID:          subject.ID,
		Name:        subject.Name,
		Description: subject.Description,
		Teacher:     subject.Teacher,
		Color:       subject.Color,
	}
}

// NewSubjectListResponse builds the list representation for /subjects.
func NewSubjectListResponse(subjects []*domain.Subject) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		out = append(out, NewSubjectResponse(s))
	}
	return out
}

// TaskUpdateRequest defines the JSON payload for partial task updates.
// Absent fields leave the stored values untouched.
type TaskUpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Priority    *string    `json:"priority"`
	DueDate     *string    `json:"due_date"`
	SubjectID   *uuid.UUID `json:"subject_id"`
	Completed   *bool      `json:"completed"`
}

// TaskResponse defines the task representation returned to clients.
// The due date is serialized as a plain calendar date.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	SubjectID   *uuid.UUID `json:"subject_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Priority    string     `json:"priority"`
	DueDate     string     `json:"due_date"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewTaskResponse builds a TaskResponse from a domain task.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		SubjectID:   task.SubjectID,
		Title:       task.Title,
		Description: task.Description,
		Image:       task.Image,
		Priority:    task.Priority,
		DueDate:     task.DueDate.Format(dueDateLayout),
		Completed:   task.Completed,
		CreatedAt:   task.CreatedAt,
	}
}

// NewTaskListResponse builds the list representation for the task list
// endpoints.
func NewTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, NewTaskResponse(t))
	}
	return out
}

// HistoryEntryResponse defines one audit log row returned by /history.
type HistoryEntryResponse struct {
	TaskID    uuid.UUID `json:"task_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHistoryListResponse builds the list representation for /history.
func NewHistoryListResponse(entries []*domain.HistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			TaskID:    e.TaskID,
			Action:    string(e.Action),
			Timestamp: e.Timestamp,
		})
	}
	return out
}

// HealthResponse defines the /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
