package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable clock for
// deterministic expiry tests. Test-only; production code goes through
// NewJWTService with an injected config.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
