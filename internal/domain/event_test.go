package domain

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCalendarEvent(t *testing.T) {
	t.Parallel()

	t.Run("valid untimed event", func(t *testing.T) {
		t.Parallel()
		ev, err := NewCalendarEvent("2025-09-01", "", "Birthday")
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", ev.Date)
		assert.Empty(t, ev.Time)
		assert.Equal(t, "Birthday", ev.Title)
	})

	t.Run("valid timed event", func(t *testing.T) {
		t.Parallel()
		ev, err := NewCalendarEvent("2025-09-01", "14:30", "Meeting")
		require.NoError(t, err)
		assert.Equal(t, "14:30", ev.Time)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		t.Parallel()
		ev, err := NewCalendarEvent("2025-09-01", "", "  Dentist  ")
		require.NoError(t, err)
		assert.Equal(t, "Dentist", ev.Title)
	})

	tests := []struct {
		name    string
		date    string
		time    string
		title   string
		wantErr error
	}{
		{name: "empty date", date: "", time: "", title: "x", wantErr: ErrEventDateEmpty},
		{name: "malformed date", date: "01/09/2025", time: "", title: "x", wantErr: ErrEventDateInvalid},
		{name: "impossible date", date: "2025-02-30", time: "", title: "x", wantErr: ErrEventDateInvalid},
		{name: "bad hour", date: "2025-09-01", time: "24:00", title: "x", wantErr: ErrEventTimeInvalid},
		{name: "bad minute", date: "2025-09-01", time: "12:60", title: "x", wantErr: ErrEventTimeInvalid},
		{name: "missing colon", date: "2025-09-01", time: "1230", title: "x", wantErr: ErrEventTimeInvalid},
		{name: "empty title", date: "2025-09-01", time: "", title: "", wantErr: ErrEventTitleEmpty},
		{name: "blank title", date: "2025-09-01", time: "", title: "   ", wantErr: ErrEventTitleEmpty},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewCalendarEvent(tc.date, tc.time, tc.title)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCalendarEventSortKey(t *testing.T) {
	t.Parallel()

	events := []CalendarEvent{
		{Date: "2025-09-02", Time: "09:00", Title: "Standup"},
		{Date: "2025-09-01", Time: "14:30", Title: "Meeting"},
		{Date: "2025-09-01", Time: "", Title: "Birthday"},
		{Date: "2025-09-03", Time: "", Title: "Holiday"},
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].SortKey() < events[j].SortKey()
	})

	// The untimed event sorts before the timed event on the same date.
	assert.Equal(t, "Birthday", events[0].Title)
	assert.Equal(t, "Meeting", events[1].Title)
	assert.Equal(t, "Standup", events[2].Title)
	assert.Equal(t, "Holiday", events[3].Title)
}
