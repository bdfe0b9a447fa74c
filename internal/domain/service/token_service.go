package service

import "github.com/google/uuid"

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateAccessToken creates a signed token carrying the user's identity.
	GenerateAccessToken(userID uuid.UUID) (string, error)

	// ValidateAccessToken verifies a token and returns the user ID it carries.
	ValidateAccessToken(token string) (uuid.UUID, error)
}
