package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/luachlab/luach-api/internal/config"
	"github.com/luachlab/luach-api/internal/hebcal"
	"github.com/luachlab/luach-api/internal/platform/logger"
	"github.com/luachlab/luach-api/internal/platform/postgres"
	"github.com/luachlab/luach-api/internal/service/account"
	"github.com/luachlab/luach-api/internal/service/auth"
	"github.com/luachlab/luach-api/internal/service/calendar"
	"github.com/luachlab/luach-api/internal/store"
)

// application holds the wired dependencies of the server process.
type application struct {
	config          *config.Config
	logger          *slog.Logger
	db              *sql.DB
	userStore       store.UserStore
	eventStore      store.EventStore
	jwtService      auth.JWTService
	passwordHasher  *auth.BcryptHasher
	calendarService *calendar.Service
	accountService  *account.Service
}

// newApplication loads configuration and wires every component. The
// Hebrew calendar converter is probed here so an unsupported calendar
// fails the process at startup instead of at first render.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	converter, err := hebcal.NewHDateConverter()
	if err != nil {
		return nil, fmt.Errorf("hebrew calendar unavailable: %w", err)
	}
	engine := hebcal.New(converter)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	eventStore := postgres.NewPostgresEventStore(db, log)

	return &application{
		config:          cfg,
		logger:          log,
		db:              db,
		userStore:       userStore,
		eventStore:      eventStore,
		jwtService:      jwtService,
		passwordHasher:  auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		calendarService: calendar.NewService(engine, eventStore, log),
		accountService:  account.NewService(db, userStore, eventStore, log),
	}, nil
}

// cleanup releases process-wide resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
