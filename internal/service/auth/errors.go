package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or its
	// signature does not match.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrWrongTokenType indicates a token was presented in the wrong
	// context (e.g. an access token used as a refresh token).
	ErrWrongTokenType = errors.New("wrong token type")
)
