package hebcal

import (
	"fmt"

	"github.com/luachlab/luach-api/internal/domain"
)

// boundaryScanLimit caps the day-at-a-time boundary scans. A Hebrew month
// never exceeds 30 days, so any scan that runs this long indicates a
// broken converter.
const boundaryScanLimit = 40

// MonthGrid is the ordered set of civil dates composing exactly one
// Hebrew month, in ascending civil-date order. Length is always 29 or 30.
type MonthGrid []domain.CivilDate

// First returns the civil date of day 1 of the month.
func (g MonthGrid) First() domain.CivilDate {
	return g[0]
}

// Last returns the civil date of the final day of the month.
func (g MonthGrid) Last() domain.CivilDate {
	return g[len(g)-1]
}

// Contains reports whether the given ISO date falls inside the month.
func (g MonthGrid) Contains(iso string) bool {
	for _, d := range g {
		if d.ISO() == iso {
			return true
		}
	}
	return false
}

// Engine derives month structure from a conversion oracle. It holds no
// mutable state; the view anchor is always passed in by the caller.
type Engine struct {
	conv Converter
}

// New creates an Engine backed by the given converter.
func New(conv Converter) *Engine {
	return &Engine{conv: conv}
}

// Convert exposes the underlying oracle.
func (e *Engine) Convert(d domain.CivilDate) (domain.HebrewDate, error) {
	return e.conv.Convert(d)
}

// MonthStart returns the civil date that is day 1 of the Hebrew month
// containing anchor. It walks backward one civil day at a time until the
// converter reports day 1; month lengths vary, so scanning against the
// oracle is the only robust strategy. Returns ErrBoundaryScan if the walk
// exceeds boundaryScanLimit steps.
func (e *Engine) MonthStart(anchor domain.CivilDate) (domain.CivilDate, error) {
	d := anchor
	for i := 0; i < boundaryScanLimit; i++ {
		parts, err := e.conv.Convert(d)
		if err != nil {
			return domain.CivilDate{}, err
		}
		if parts.Day == 1 {
			return d, nil
		}
		d = d.AddDays(-1)
	}
	return domain.CivilDate{}, fmt.Errorf("%w: no month start within %d days before %s",
		ErrBoundaryScan, boundaryScanLimit, anchor)
}

// BuildMonth returns the full grid of the Hebrew month beginning at
// monthStart, which must be a day-1 civil date (as returned by
// MonthStart). The walk stops at the first date that is day 1 of a
// differently named month; the month-name check is the authoritative
// termination signal, since day 1 alone could in principle recur.
func (e *Engine) BuildMonth(monthStart domain.CivilDate) (MonthGrid, error) {
	startParts, err := e.conv.Convert(monthStart)
	if err != nil {
		return nil, err
	}
	if startParts.Day != 1 {
		return nil, fmt.Errorf("%w: %s is day %d, not a month start",
			ErrBoundaryScan, monthStart, startParts.Day)
	}

	grid := MonthGrid{monthStart}
	d := monthStart
	for i := 0; i < boundaryScanLimit; i++ {
		d = d.AddDays(1)
		parts, err := e.conv.Convert(d)
		if err != nil {
			return nil, err
		}
		if parts.Day == 1 && parts.MonthName != startParts.MonthName {
			return grid, nil
		}
		grid = append(grid, d)
	}
	return nil, fmt.Errorf("%w: no month end within %d days after %s",
		ErrBoundaryScan, boundaryScanLimit, monthStart)
}

// MonthLength returns the number of days in the Hebrew month containing
// anchor: always 29 or 30.
func (e *Engine) MonthLength(anchor domain.CivilDate) (int, error) {
	start, err := e.MonthStart(anchor)
	if err != nil {
		return 0, err
	}
	grid, err := e.BuildMonth(start)
	if err != nil {
		return 0, err
	}
	return len(grid), nil
}

// Shift moves anchor by deltaMonths whole Hebrew months and returns day 1
// of the target month. Forward shifts advance past the current month's
// variable length and re-normalize; backward shifts step into the
// previous month and find its start. A zero delta normalizes to the
// anchor month's own start rather than returning the raw anchor.
func (e *Engine) Shift(anchor domain.CivilDate, deltaMonths int) (domain.CivilDate, error) {
	d := anchor

	steps := deltaMonths
	if steps < 0 {
		steps = -steps
	}

	for i := 0; i < steps; i++ {
		start, err := e.MonthStart(d)
		if err != nil {
			return domain.CivilDate{}, err
		}
		if deltaMonths > 0 {
			grid, err := e.BuildMonth(start)
			if err != nil {
				return domain.CivilDate{}, err
			}
			d = start.AddDays(len(grid))
		} else {
			d, err = e.MonthStart(start.AddDays(-1))
			if err != nil {
				return domain.CivilDate{}, err
			}
		}
	}

	return e.MonthStart(d)
}
