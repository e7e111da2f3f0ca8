package main

import (
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	// The error is returned to main which handles the exit.
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes the given goose command ("up", "down",
// "status") against the embedded migration files.
func (app *application) runMigrations(command string) error {
	goose.SetBaseFS(embeddedMigrations)
	goose.SetLogger(&slogGooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	app.logger.Info("running migrations", "command", command)

	var err error
	switch command {
	case "up":
		err = goose.Up(app.db, "migrations")
	case "down":
		err = goose.Down(app.db, "migrations")
	case "status":
		err = goose.Status(app.db, "migrations")
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
	if err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	return nil
}
