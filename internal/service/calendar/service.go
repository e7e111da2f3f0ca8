// Package calendar assembles the displayable Hebrew month: the grid of
// day cells with their letter-numerals, the month's events, navigation
// between months, and iCalendar export.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/hebcal"
	"github.com/luachlab/luach-api/internal/hebcal/gematria"
	"github.com/luachlab/luach-api/internal/platform/logger"
	"github.com/luachlab/luach-api/internal/store"
)

// DayCell is one rendered day of a month view.
type DayCell struct {
	// Date is the ISO civil date of the cell.
	Date string `json:"date"`

	// Numeral is the gematria day-of-month numeral.
	Numeral string `json:"numeral"`

	// CivilTag is the small "D.M" civil-date subscript.
	CivilTag string `json:"civil_tag"`

	// Today marks the cell holding the current date.
	Today bool `json:"today"`

	// HasEvents marks cells with at least one event (the dot indicator).
	HasEvents bool `json:"has_events"`
}

// RenderedMonth is the complete payload for displaying one Hebrew month.
type RenderedMonth struct {
	// Header is "<month name> <year numeral>".
	Header string `json:"header"`

	// Today is the full reading of the current date.
	Today string `json:"today"`

	// LeadingWeekday is the weekday index (0 = Sunday) of day 1, the
	// number of blank cells preceding it in a week-aligned grid.
	LeadingWeekday int `json:"leading_weekday"`

	// Days are the month's cells in ascending civil-date order.
	Days []DayCell `json:"days"`

	// Events are the month's events, sorted by date+time with untimed
	// events first on their date.
	Events []domain.CalendarEvent `json:"events"`
}

// Service renders months and manages the events shown on them. The view
// anchor is always an argument; the service holds no view state.
type Service struct {
	engine *hebcal.Engine
	events store.EventStore
	logger *slog.Logger
	now    func() time.Time // injectable for testing
}

// NewService creates a calendar Service. If logger is nil, the default
// logger is used.
func NewService(engine *hebcal.Engine, events store.EventStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		engine: engine,
		events: events,
		logger: log.With(slog.String("component", "calendar_service")),
		now:    time.Now,
	}
}

// RenderMonth builds the month view of the Hebrew month containing
// anchor for the given user.
func (s *Service) RenderMonth(
	ctx context.Context,
	userID uuid.UUID,
	anchor domain.CivilDate,
) (*RenderedMonth, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	start, err := s.engine.MonthStart(anchor)
	if err != nil {
		log.Error("failed to find month start",
			slog.String("error", err.Error()),
			slog.String("anchor", anchor.ISO()))
		return nil, err
	}

	grid, err := s.engine.BuildMonth(start)
	if err != nil {
		log.Error("failed to build month grid",
			slog.String("error", err.Error()),
			slog.String("start", start.ISO()))
		return nil, err
	}

	header, err := s.engine.MonthTitle(start)
	if err != nil {
		return nil, err
	}

	today := domain.CivilDateOf(s.now())
	todayLine, err := s.engine.FormatFull(today)
	if err != nil {
		return nil, err
	}

	events, err := s.listForGrid(ctx, userID, grid)
	if err != nil {
		return nil, err
	}

	eventDates := make(map[string]bool, len(events))
	for _, ev := range events {
		eventDates[ev.Date] = true
	}

	days := make([]DayCell, 0, len(grid))
	for _, d := range grid {
		parts, err := s.engine.Convert(d)
		if err != nil {
			return nil, err
		}
		numeral, err := gematria.Day(parts.Day)
		if err != nil {
			return nil, err
		}
		days = append(days, DayCell{
			Date:      d.ISO(),
			Numeral:   numeral,
			CivilTag:  d.CivilTag(),
			Today:     d == today,
			HasEvents: eventDates[d.ISO()],
		})
	}

	return &RenderedMonth{
		Header:         header,
		Today:          todayLine,
		LeadingWeekday: int(start.Weekday()),
		Days:           days,
		Events:         events,
	}, nil
}

// Shift returns day 1 of the Hebrew month deltaMonths away from the
// month containing anchor.
func (s *Service) Shift(ctx context.Context, anchor domain.CivilDate, deltaMonths int) (domain.CivilDate, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	target, err := s.engine.Shift(anchor, deltaMonths)
	if err != nil {
		log.Error("failed to shift month",
			slog.String("error", err.Error()),
			slog.String("anchor", anchor.ISO()),
			slog.Int("delta", deltaMonths))
		return domain.CivilDate{}, err
	}
	return target, nil
}

// CreateEvent validates and stores a new event for the user.
func (s *Service) CreateEvent(
	ctx context.Context,
	userID uuid.UUID,
	date, eventTime, title string,
) (*domain.CalendarEvent, error) {
	ev, err := domain.NewCalendarEvent(date, eventTime, title)
	if err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, userID, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// DeleteEvent removes every event of the user matching (date, title).
func (s *Service) DeleteEvent(ctx context.Context, userID uuid.UUID, date, title string) error {
	_, err := s.events.Delete(ctx, userID, date, title)
	return err
}

// ClearEvents removes all of the user's events.
func (s *Service) ClearEvents(ctx context.Context, userID uuid.UUID) error {
	return s.events.DeleteAll(ctx, userID)
}

// listForGrid returns the user's events inside the month grid. The grid
// is a contiguous civil-date range, so the range query is exact; no
// event outside the grid can be returned.
func (s *Service) listForGrid(
	ctx context.Context,
	userID uuid.UUID,
	grid hebcal.MonthGrid,
) ([]domain.CalendarEvent, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("empty month grid")
	}
	return s.events.ListByDateRange(ctx, userID, grid.First().ISO(), grid.Last().ISO())
}
