package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkawa95/studytask-api/internal/domain"
)

func TestBcryptHasherHash(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast

	t.Run("hashes and verifies", func(t *testing.T) {
		t.Parallel()
		digest, err := hasher.Hash("correct horse battery staple")
		require.NoError(t, err)
		require.NotEmpty(t, digest)
		assert.NotEqual(t, "correct horse battery staple", digest)

		assert.NoError(t, hasher.Compare(digest, "correct horse battery staple"))
		assert.Error(t, hasher.Compare(digest, "wrong password"))
	})

	t.Run("rejects empty password", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash("")
		assert.ErrorIs(t, err, domain.ErrEmptyPassword)
	})

	t.Run("rejects password over 72 bytes", func(t *testing.T) {
		t.Parallel()
		_, err := hasher.Hash(strings.Repeat("a", 73))
		assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
	})

	t.Run("accepts password of exactly 72 bytes", func(t *testing.T) {
		t.Parallel()
		digest, err := hasher.Hash(strings.Repeat("a", 72))
		require.NoError(t, err)
		assert.NoError(t, hasher.Compare(digest, strings.Repeat("a", 72)))
	})

	t.Run("compare never panics on malformed digest", func(t *testing.T) {
		t.Parallel()
		assert.Error(t, hasher.Compare("not-a-bcrypt-digest", "anything"))
	})
}
