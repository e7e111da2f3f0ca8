package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/luachlab/luach-api/internal/api"
	apiMiddleware "github.com/luachlab/luach-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
		app.accountService,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	calendarHandler := api.NewCalendarHandler(app.calendarService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Delete("/auth/account", authHandler.DeleteAccount)

			r.Get("/calendar/month", calendarHandler.GetMonth)
			r.Get("/calendar/shift", calendarHandler.ShiftMonth)
			r.Get("/calendar/month/export", calendarHandler.ExportMonth)

			r.Post("/calendar/events", calendarHandler.CreateEvent)
			r.Delete("/calendar/events", calendarHandler.DeleteEvent)
			r.Delete("/calendar/events/all", calendarHandler.ClearEvents)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
