package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/luachlab/luach-api/internal/api/middleware"
	"github.com/luachlab/luach-api/internal/api/shared"
	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/platform/logger"
	"github.com/luachlab/luach-api/internal/service/calendar"
)

// nowUTC is the handlers' clock; a variable so tests can pin it.
var nowUTC = func() time.Time { return time.Now().UTC() }

// CalendarHandler handles calendar rendering, navigation and event
// management API requests.
type CalendarHandler struct {
	service *calendar.Service
	logger  *slog.Logger
}

// NewCalendarHandler creates a new CalendarHandler with the given dependencies.
func NewCalendarHandler(service *calendar.Service, log *slog.Logger) *CalendarHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CalendarHandler{
		service: service,
		logger:  log.With(slog.String("component", "calendar_handler")),
	}
}

// anchorFromQuery reads the "anchor" query parameter as an ISO civil
// date. A missing parameter means "today".
func anchorFromQuery(r *http.Request) (domain.CivilDate, error) {
	raw := r.URL.Query().Get("anchor")
	if raw == "" {
		return domain.CivilDateOf(nowUTC()), nil
	}
	return domain.ParseCivilDate(raw)
}

// GetMonth handles GET /api/calendar/month?anchor=YYYY-MM-DD.
// It renders the Hebrew month containing the anchor date.
func (h *CalendarHandler) GetMonth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	anchor, err := anchorFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid anchor date")
		return
	}

	month, err := h.service.RenderMonth(r.Context(), userID, anchor)
	if err != nil {
		log.Error("failed to render month", "error", err, "anchor", anchor.ISO())
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, month)
}

// ShiftMonth handles GET /api/calendar/shift?anchor=YYYY-MM-DD&delta=N.
// It returns the civil date of day 1 of the target Hebrew month.
func (h *CalendarHandler) ShiftMonth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	anchor, err := anchorFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid anchor date")
		return
	}

	delta := 0
	if raw := r.URL.Query().Get("delta"); raw != "" {
		delta, err = strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid delta")
			return
		}
	}

	target, err := h.service.Shift(r.Context(), anchor, delta)
	if err != nil {
		log.Error("failed to shift month", "error", err, "anchor", anchor.ISO(), "delta", delta)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ShiftResponse{Anchor: target.ISO()})
}

// CreateEvent handles POST /api/calendar/events.
func (h *CalendarHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	ev, err := h.service.CreateEvent(r.Context(), userID, req.Date, req.Time, req.Title)
	if err != nil {
		log.Debug("event creation rejected", "error", err)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, ev)
}

// DeleteEvent handles DELETE /api/calendar/events.
// Every event matching the (date, title) pair is removed.
func (h *CalendarHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req DeleteEventRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error")
		return
	}

	if err := h.service.DeleteEvent(r.Context(), userID, req.Date, req.Title); err != nil {
		log.Debug("event deletion failed", "error", err)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearEvents handles DELETE /api/calendar/events/all.
func (h *CalendarHandler) ClearEvents(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.service.ClearEvents(r.Context(), userID); err != nil {
		log.Error("failed to clear events", "error", err)
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ExportMonth handles GET /api/calendar/month/export?anchor=YYYY-MM-DD.
// It streams the month's events as an iCalendar file.
func (h *CalendarHandler) ExportMonth(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	anchor, err := anchorFromQuery(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid anchor date")
		return
	}

	payload, err := h.service.ExportMonthICS(r.Context(), userID, anchor)
	if err != nil {
		log.Error("failed to export month", "error", err, "anchor", anchor.ISO())
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=luach-month.ics")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(payload)); err != nil {
		log.Error("failed to write ICS response", "error", err)
	}
}
