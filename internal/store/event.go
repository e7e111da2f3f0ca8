package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/domain"
)

// EventStore defines the interface for calendar event persistence.
// Events are scoped to their owning user; every operation takes the
// owner's ID. Event identity is the (date, title) pair: duplicates are
// indistinguishable and collapse together under deletion.
type EventStore interface {
	// Create saves a new event for the user. The event must be valid
	// according to domain validation rules; validation errors are
	// returned wrapped in ErrInvalidEntity.
	Create(ctx context.Context, userID uuid.UUID, event *domain.CalendarEvent) error

	// Delete removes every event of the user matching the exact
	// (date, title) pair and returns the number removed.
	// Returns ErrEventNotFound if nothing matched.
	Delete(ctx context.Context, userID uuid.UUID, date, title string) (int64, error)

	// DeleteAll removes all events of the user. Removing from an empty
	// store is not an error.
	DeleteAll(ctx context.Context, userID uuid.UUID) error

	// ListByDateRange returns the user's events whose date falls in
	// [from, to] (ISO date strings, inclusive), sorted ascending by the
	// concatenation of date and time; untimed events sort before timed
	// events on the same date. Returns an empty slice when none match.
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.CalendarEvent, error)

	// WithTx returns an EventStore bound to the given transaction.
	WithTx(tx *sql.Tx) EventStore
}
