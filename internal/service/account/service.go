// Package account implements account lifecycle operations that span
// multiple stores.
package account

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/platform/logger"
	"github.com/luachlab/luach-api/internal/store"
)

// Service orchestrates multi-store account operations inside database
// transactions.
type Service struct {
	db     *sql.DB
	users  store.UserStore
	events store.EventStore
	logger *slog.Logger
}

// NewService creates an account Service. If logger is nil, the default
// logger is used.
func NewService(db *sql.DB, users store.UserStore, events store.EventStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		db:     db,
		users:  users,
		events: events,
		logger: log.With(slog.String("component", "account_service")),
	}
}

// DeleteAccount removes the user and all of the user's events in a
// single transaction. Either both are gone afterwards or neither is.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *Service) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.events.WithTx(tx).DeleteAll(ctx, userID); err != nil {
			return err
		}
		return s.users.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("account deleted", slog.String("user_id", userID.String()))
	return nil
}
