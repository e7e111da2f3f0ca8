package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/domain"
)

// UserStore defines the interface for user account persistence.
type UserStore interface {
	// Create saves a new user. The user's HashedPassword must already be
	// set; plaintext passwords never reach the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Delete removes a user and, through cascading deletes, all of the
	// user's events. Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
