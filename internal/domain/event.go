package domain

import (
	"errors"
	"regexp"
	"strings"
)

// Event-specific validation errors
var (
	// ErrEventDateEmpty is returned when an event has no date.
	ErrEventDateEmpty = errors.New("event date cannot be empty")

	// ErrEventDateInvalid is returned when an event date is not a valid
	// ISO "YYYY-MM-DD" civil date.
	ErrEventDateInvalid = errors.New("event date must be a valid YYYY-MM-DD date")

	// ErrEventTimeInvalid is returned when an event time is neither empty
	// nor a valid "HH:MM" clock time.
	ErrEventTimeInvalid = errors.New("event time must be HH:MM or empty")

	// ErrEventTitleEmpty is returned when an event title is empty or blank.
	ErrEventTitleEmpty = errors.New("event title cannot be empty")
)

var eventTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// CalendarEvent is a user-authored event pinned to a civil date.
// Identity is the (Date, Title) pair: two events sharing both fields are
// indistinguishable and collapse together under deletion. The domain
// model carries no surrogate ID.
type CalendarEvent struct {
	// Date is the ISO "YYYY-MM-DD" civil date the event falls on.
	Date string `json:"date"`

	// Time is an optional "HH:MM" clock time; empty means an untimed
	// (all-day) event. Untimed events sort before timed events on the
	// same date because "" < any "HH:MM".
	Time string `json:"time"`

	// Title is the user-supplied event title; never empty after validation.
	Title string `json:"title"`
}

// NewCalendarEvent creates a validated CalendarEvent. The title is
// trimmed of surrounding whitespace before validation, matching the
// behavior users expect from a free-text form field.
func NewCalendarEvent(date, eventTime, title string) (*CalendarEvent, error) {
	ev := &CalendarEvent{
		Date:  date,
		Time:  eventTime,
		Title: strings.TrimSpace(title),
	}

	if err := ev.Validate(); err != nil {
		return nil, err
	}

	return ev, nil
}

// Validate checks if the CalendarEvent has valid data.
// Returns an error if any field fails validation.
func (e *CalendarEvent) Validate() error {
	if e.Date == "" {
		return ErrEventDateEmpty
	}

	if _, err := ParseCivilDate(e.Date); err != nil {
		return ErrEventDateInvalid
	}

	if e.Time != "" && !eventTimeRe.MatchString(e.Time) {
		return ErrEventTimeInvalid
	}

	if strings.TrimSpace(e.Title) == "" {
		return ErrEventTitleEmpty
	}

	return nil
}

// SortKey returns the concatenation of date and time, the ordering key
// for month listings. Untimed events sort first on their date.
func (e *CalendarEvent) SortKey() string {
	return e.Date + e.Time
}
