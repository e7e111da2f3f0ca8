package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachlab/luach-api/internal/api/shared"
	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/hebcal"
	"github.com/luachlab/luach-api/internal/service/calendar"
	"github.com/luachlab/luach-api/internal/store"
)

// stubEventStore is an in-memory EventStore mirroring the postgres
// contract closely enough for handler tests.
type stubEventStore struct {
	events map[uuid.UUID][]domain.CalendarEvent
}

func newStubEventStore() *stubEventStore {
	return &stubEventStore{events: make(map[uuid.UUID][]domain.CalendarEvent)}
}

func (s *stubEventStore) Create(ctx context.Context, userID uuid.UUID, event *domain.CalendarEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}
	s.events[userID] = append(s.events[userID], *event)
	return nil
}

func (s *stubEventStore) Delete(ctx context.Context, userID uuid.UUID, date, title string) (int64, error) {
	var kept []domain.CalendarEvent
	var removed int64
	for _, ev := range s.events[userID] {
		if ev.Date == date && ev.Title == title {
			removed++
			continue
		}
		kept = append(kept, ev)
	}
	if removed == 0 {
		return 0, store.ErrEventNotFound
	}
	s.events[userID] = kept
	return removed, nil
}

func (s *stubEventStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	delete(s.events, userID)
	return nil
}

func (s *stubEventStore) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.CalendarEvent, error) {
	out := []domain.CalendarEvent{}
	for _, ev := range s.events[userID] {
		if ev.Date >= from && ev.Date <= to {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SortKey() < out[j].SortKey()
	})
	return out, nil
}

func (s *stubEventStore) WithTx(tx *sql.Tx) store.EventStore {
	return s
}

func newCalendarHandler(t *testing.T, events store.EventStore) *CalendarHandler {
	t.Helper()
	conv, err := hebcal.NewHDateConverter()
	require.NoError(t, err)
	return NewCalendarHandler(calendar.NewService(hebcal.New(conv), events, nil), nil)
}

func authedRequest(t *testing.T, method, target string, body []byte, userID uuid.UUID) *http.Request {
	t.Helper()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func TestGetMonthHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("renders the anchored month", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		w := httptest.NewRecorder()
		handler.GetMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/month?anchor=2024-10-10", nil, userID))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var month calendar.RenderedMonth
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &month))
		assert.Len(t, month.Days, 30)
		assert.Equal(t, "2024-10-03", month.Days[0].Date)
		assert.Contains(t, month.Header, "ה׳תשפ״ה")
	})

	t.Run("rejects a malformed anchor", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		w := httptest.NewRecorder()
		handler.GetMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/month?anchor=10/03/2024", nil, userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires authentication", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		w := httptest.NewRecorder()
		handler.GetMonth(w, httptest.NewRequest(http.MethodGet, "/api/calendar/month", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestShiftMonthHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	handler := newCalendarHandler(t, newStubEventStore())

	t.Run("shifts forward", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.ShiftMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/shift?anchor=2024-10-10&delta=1", nil, userID))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ShiftResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-11-02", resp.Anchor)
	})

	t.Run("shifts backward", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.ShiftMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/shift?anchor=2024-11-10&delta=-1", nil, userID))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ShiftResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-10-03", resp.Anchor)
	})

	t.Run("missing delta normalizes to the month start", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.ShiftMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/shift?anchor=2024-10-10", nil, userID))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ShiftResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "2024-10-03", resp.Anchor)
	})

	t.Run("rejects a non-numeric delta", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.ShiftMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/shift?anchor=2024-10-10&delta=abc", nil, userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates a valid event", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		body, err := json.Marshal(CreateEventRequest{Date: "2024-10-05", Time: "09:00", Title: "Meeting"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		handler.CreateEvent(w, authedRequest(t, http.MethodPost, "/api/calendar/events", body, userID))

		require.Equal(t, http.StatusCreated, w.Code)
		var ev domain.CalendarEvent
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ev))
		assert.Equal(t, "Meeting", ev.Title)
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		w := httptest.NewRecorder()
		handler.CreateEvent(w, authedRequest(t, http.MethodPost, "/api/calendar/events",
			[]byte(`{"date":"2024-10-05"}`), userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an invalid time", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		body, err := json.Marshal(CreateEventRequest{Date: "2024-10-05", Time: "25:00", Title: "Meeting"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		handler.CreateEvent(w, authedRequest(t, http.MethodPost, "/api/calendar/events", body, userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		w := httptest.NewRecorder()
		handler.CreateEvent(w, authedRequest(t, http.MethodPost, "/api/calendar/events",
			[]byte(`{"date":`), userID))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("deletes an existing event", func(t *testing.T) {
		t.Parallel()
		events := newStubEventStore()
		handler := newCalendarHandler(t, events)

		ev, err := domain.NewCalendarEvent("2024-10-05", "", "Birthday")
		require.NoError(t, err)
		require.NoError(t, events.Create(context.Background(), userID, ev))

		body, err := json.Marshal(DeleteEventRequest{Date: "2024-10-05", Title: "Birthday"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		handler.DeleteEvent(w, authedRequest(t, http.MethodDelete, "/api/calendar/events", body, userID))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, events.events[userID])
	})

	t.Run("missing event yields not found", func(t *testing.T) {
		t.Parallel()
		handler := newCalendarHandler(t, newStubEventStore())

		body, err := json.Marshal(DeleteEventRequest{Date: "2024-10-05", Title: "Nothing"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		handler.DeleteEvent(w, authedRequest(t, http.MethodDelete, "/api/calendar/events", body, userID))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestClearEventsHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	events := newStubEventStore()
	handler := newCalendarHandler(t, events)

	ev, err := domain.NewCalendarEvent("2024-10-05", "", "One")
	require.NoError(t, err)
	require.NoError(t, events.Create(context.Background(), userID, ev))

	w := httptest.NewRecorder()
	handler.ClearEvents(w, authedRequest(t, http.MethodDelete, "/api/calendar/events/all", nil, userID))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, events.events[userID])
}

func TestExportMonthHandler(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	events := newStubEventStore()
	handler := newCalendarHandler(t, events)

	ev, err := domain.NewCalendarEvent("2024-10-05", "", "Birthday")
	require.NoError(t, err)
	require.NoError(t, events.Create(context.Background(), userID, ev))

	w := httptest.NewRecorder()
	handler.ExportMonth(w, authedRequest(t, http.MethodGet, "/api/calendar/month/export?anchor=2024-10-10", nil, userID))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "luach-month.ics")
	assert.Contains(t, w.Body.String(), "SUMMARY:Birthday")
}
