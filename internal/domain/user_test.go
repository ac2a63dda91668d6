package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("creates valid user with normalized fields", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("  Alice ", " Kowalska ", " Alice@Example.COM ")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "Kowalska", user.LastName)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name      string
			firstName string
			lastName  string
			email     string
			wantErr   error
		}{
			{"missing first name", "", "Kowalska", "a@example.com", ErrValidation},
			{"missing last name", "Alice", "  ", "a@example.com", ErrValidation},
			{"missing email", "Alice", "Kowalska", "", ErrInvalidEmail},
			{"email without at sign", "Alice", "Kowalska", "example.com", ErrInvalidEmail},
			{"email without domain dot", "Alice", "Kowalska", "a@example", ErrInvalidEmail},
			{"email ending with at sign", "Alice", "Kowalska", "a@", ErrInvalidEmail},
		}

		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, err := NewUser(tt.firstName, tt.lastName, tt.email)
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Alice", "Kowalska", "alice@example.com")
	require.NoError(t, err)

	user.ID = uuid.Nil
	assert.ErrorIs(t, user.Validate(), ErrInvalidID)
}
