package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/platform/logger"
	"github.com/luachlab/luach-api/internal/store"
)

// PostgresEventStore implements the store.EventStore interface using a
// PostgreSQL database as the storage backend. Rows carry a surrogate id
// column for storage bookkeeping only; domain identity remains the
// (date, title) pair and deletion matches every row with that pair.
type PostgresEventStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEventStore creates a new PostgreSQL implementation of the
// EventStore interface. It accepts a database connection or transaction
// managed by the caller. If logger is nil, the default logger is used.
func NewPostgresEventStore(db store.DBTX, logger *slog.Logger) *PostgresEventStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEventStore{
		db:     db,
		logger: logger.With(slog.String("component", "event_store")),
	}
}

// Ensure PostgresEventStore implements store.EventStore interface
var _ store.EventStore = (*PostgresEventStore)(nil)

// Create implements store.EventStore.Create
func (s *PostgresEventStore) Create(ctx context.Context, userID uuid.UUID, event *domain.CalendarEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("event validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO events (id, user_id, event_date, event_time, title)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, uuid.New(), userID, event.Date, event.Time, event.Title)
	if err != nil {
		log.Error("failed to create event",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("date", event.Date))
		return mapError(err)
	}

	log.Info("event created",
		slog.String("user_id", userID.String()),
		slog.String("date", event.Date))
	return nil
}

// Delete implements store.EventStore.Delete
func (s *PostgresEventStore) Delete(ctx context.Context, userID uuid.UUID, date, title string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM events
		WHERE user_id = $1 AND event_date = $2 AND title = $3
	`
	result, err := s.db.ExecContext(ctx, query, userID, date, title)
	if err != nil {
		log.Error("failed to delete event",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("date", date))
		return 0, mapError(err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, mapError(err)
	}
	if removed == 0 {
		log.Debug("no event matched for delete",
			slog.String("user_id", userID.String()),
			slog.String("date", date))
		return 0, store.ErrEventNotFound
	}

	log.Info("events deleted",
		slog.String("user_id", userID.String()),
		slog.String("date", date),
		slog.Int64("removed", removed))
	return removed, nil
}

// DeleteAll implements store.EventStore.DeleteAll
func (s *PostgresEventStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM events WHERE user_id = $1`
	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete all events",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return mapError(err)
	}

	removed, _ := result.RowsAffected()
	log.Info("all events deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("removed", removed))
	return nil
}

// ListByDateRange implements store.EventStore.ListByDateRange
// The ORDER BY concatenates date and time so untimed events (empty time)
// sort before timed events on the same date.
func (s *PostgresEventStore) ListByDateRange(
	ctx context.Context,
	userID uuid.UUID,
	from, to string,
) ([]domain.CalendarEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT event_date, event_time, title
		FROM events
		WHERE user_id = $1 AND event_date >= $2 AND event_date <= $3
		ORDER BY event_date || event_time, title
	`
	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		log.Error("failed to query events by date range",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("from", from),
			slog.String("to", to))
		return nil, mapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	events := []domain.CalendarEvent{}
	for rows.Next() {
		var ev domain.CalendarEvent
		if err := rows.Scan(&ev.Date, &ev.Time, &ev.Title); err != nil {
			log.Error("failed to scan event row", slog.String("error", err.Error()))
			return nil, mapError(err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	log.Debug("events listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(events)))
	return events, nil
}

// WithTx implements store.EventStore.WithTx
func (s *PostgresEventStore) WithTx(tx *sql.Tx) store.EventStore {
	return &PostgresEventStore{db: tx, logger: s.logger}
}
