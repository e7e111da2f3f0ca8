package calendar

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportMonthICS(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	svc := newTestService(t, newMemEventStore())

	_, err := svc.CreateEvent(ctx, userID, "2024-10-05", "", "Birthday")
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, userID, "2024-10-07", "09:30", "Meeting")
	require.NoError(t, err)
	_, err = svc.CreateEvent(ctx, userID, "2024-11-20", "", "Next month")
	require.NoError(t, err)

	out, err := svc.ExportMonthICS(ctx, userID, anchorDate(t, "2024-10-10"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "SUMMARY:Birthday")
	assert.Contains(t, out, "SUMMARY:Meeting")
	assert.NotContains(t, out, "Next month")

	// The untimed event is exported as an all-day entry.
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20241005")
	// The timed event carries its clock time.
	assert.Contains(t, out, "DTSTART:20241007T093000Z")
	assert.Contains(t, out, "UID:2024-10-05-Birthday@luach")

	assert.Equal(t, 2, strings.Count(out, "BEGIN:VEVENT"))
}

func TestExportMonthICSEmpty(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newMemEventStore())
	out, err := svc.ExportMonthICS(context.Background(), uuid.New(), anchorDate(t, "2024-10-10"))
	require.NoError(t, err)

	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
