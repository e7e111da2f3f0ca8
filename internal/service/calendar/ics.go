package calendar

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/luachlab/luach-api/internal/domain"
)

// ExportMonthICS serializes the events of the Hebrew month containing
// anchor as an iCalendar document. Timed events become one-hour entries
// at their clock time; untimed events become all-day entries.
func (s *Service) ExportMonthICS(
	ctx context.Context,
	userID uuid.UUID,
	anchor domain.CivilDate,
) (string, error) {
	start, err := s.engine.MonthStart(anchor)
	if err != nil {
		return "", err
	}
	grid, err := s.engine.BuildMonth(start)
	if err != nil {
		return "", err
	}

	events, err := s.listForGrid(ctx, userID, grid)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := s.now().UTC()
	for _, ev := range events {
		day, err := domain.ParseCivilDate(ev.Date)
		if err != nil {
			return "", err
		}

		// UID derived from the identity pair keeps re-exports stable.
		uid := fmt.Sprintf("%s-%s@luach", ev.Date, ev.Title)
		entry := cal.AddEvent(uid)
		entry.SetDtStampTime(now)
		entry.SetSummary(ev.Title)

		if ev.Time == "" {
			entry.SetAllDayStartAt(day.Time())
			entry.SetAllDayEndAt(day.Time().AddDate(0, 0, 1))
			continue
		}

		var hour, minute int
		if _, err := fmt.Sscanf(ev.Time, "%d:%d", &hour, &minute); err != nil {
			return "", fmt.Errorf("malformed event time %q: %w", ev.Time, err)
		}
		startAt := time.Date(day.Year, day.Month, day.Day, hour, minute, 0, 0, time.UTC)
		entry.SetStartAt(startAt)
		entry.SetEndAt(startAt.Add(time.Hour))
	}

	return cal.Serialize(), nil
}
