// Package auth provides JWT token issuance/validation and password
// hashing for user authentication.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken validates an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrInvalidToken or ErrWrongTokenType on
	// failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token for the
	// user. Refresh tokens have a longer lifetime and are only accepted
	// by ValidateRefreshToken.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken validates a refresh token and extracts its
	// claims, rejecting tokens of any other type.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims carries the application-level reading of a validated token.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID

	// TokenType is "access" or "refresh".
	TokenType string

	// ExpiresAt is when the token stops being valid.
	ExpiresAt time.Time
}
