package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Claims holds the decoded contents of a validated access token.
type Claims struct {
	UserID    uuid.UUID
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// JWTService issues and verifies signed, time-limited bearer tokens.
// This is the only component that touches the signing secret; everything
// else works with opaque token strings or decoded Claims.
type JWTService interface {
	// GenerateToken creates a signed access token encoding the user's
	// identity with an absolute expiry.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the token's signature and time claims and
	// returns the decoded claims. Returns ErrExpiredToken for expired
	// tokens, ErrMissingSubject when the payload has no subject, and
	// ErrInvalidToken for anything malformed or forged.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
