// Package main implements the entry point for the luach API server,
// which serves the Hebrew calendar engine and users' calendar events
// behind an authenticated HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
)

func main() {
	migrateCmd := flag.String("migrate", "", "Run a migration command (up, down, status) and exit")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := app.runMigrations(*migrateCmd); err != nil {
			app.logger.Error("migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	// Normal startup applies pending migrations before serving.
	if err := app.runMigrations("up"); err != nil {
		app.logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
