package auth

import "lorebook/internal/domain/models"

// TokenVerifier validates bearer tokens for the auth middleware. The
// abstraction keeps the middleware agnostic to where signing keys come from.
type TokenVerifier interface {
	// VerifyToken validates a JWT string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or incorrectly
	// signed.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier.
	Close() error
}
