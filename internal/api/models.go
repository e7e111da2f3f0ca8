package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateEventRequest defines the payload for event creation.
// Date and title are required; time is optional ("HH:MM" when present).
type CreateEventRequest struct {
	Date  string `json:"date"  validate:"required"`
	Time  string `json:"time"`
	Title string `json:"title" validate:"required"`
}

// DeleteEventRequest identifies the events to remove by their identity
// pair; every event matching both fields is removed.
type DeleteEventRequest struct {
	Date  string `json:"date"  validate:"required"`
	Title string `json:"title" validate:"required"`
}

// ShiftResponse carries the new anchor after month navigation.
type ShiftResponse struct {
	Anchor string `json:"anchor"`
}
