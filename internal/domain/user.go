package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the task API.
// The email is stored lowercased and acts as the login identity.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with a fresh UUID and server-assigned
// creation timestamp. Name fields are trimmed and the email is
// normalized to lower case. The caller is responsible for hashing the
// password and setting HashedPassword before the user is stored.
func NewUser(firstName, lastName, email string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks that all required user fields are present and that the
// email looks structurally valid.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if u.FirstName == "" {
		return NewValidationError("first_name", "cannot be empty", ErrValidation)
	}
	if u.LastName == "" {
		return NewValidationError("last_name", "cannot be empty", ErrValidation)
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrInvalidEmail)
	}
	if !validEmailFormat(u.Email) {
		return NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}
	return nil
}

// validEmailFormat performs a structural check: a local part, an @, and a
// dotted domain. Full RFC 5322 validation is left to the API layer's
// validator tags.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
