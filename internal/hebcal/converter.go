// Package hebcal implements the Hebrew calendar engine: converting civil
// dates to their Hebrew-calendar reading, discovering month boundaries,
// building month grids, and navigating between months.
//
// Month lengths in the Hebrew calendar vary between 29 and 30 days in a
// pattern that is not expressible as fixed-offset arithmetic from the
// civil calendar, so boundary discovery scans day by day against a
// conversion oracle rather than computing offsets.
package hebcal

import (
	"errors"
	"fmt"
	"time"

	"github.com/hebcal/hdate"

	"github.com/luachlab/luach-api/internal/domain"
)

// Engine errors
var (
	// ErrCalendarUnsupported indicates the conversion oracle cannot perform
	// Hebrew-calendar conversion. Callers must fail closed and render an
	// unsupported-calendar state instead of guessing.
	ErrCalendarUnsupported = errors.New("hebrew calendar conversion unsupported")

	// ErrBoundaryScan indicates a month boundary scan exceeded its step cap.
	// Under a correct converter this cannot happen; it is a defect signal,
	// never a silently returned fallback date.
	ErrBoundaryScan = errors.New("month boundary scan exceeded step limit")
)

// Converter is the calendrical conversion oracle: it answers what Hebrew
// date a given civil date corresponds to. Everything else in this package
// is built on top of it. Implementations must be total over valid civil
// dates or return ErrCalendarUnsupported.
type Converter interface {
	Convert(d domain.CivilDate) (domain.HebrewDate, error)
}

// weekdayNames are the localized weekday names, indexed by time.Weekday.
var weekdayNames = [7]string{
	"יום ראשון",
	"יום שני",
	"יום שלישי",
	"יום רביעי",
	"יום חמישי",
	"יום שישי",
	"שבת",
}

// HDateConverter converts civil dates using the hebcal hdate package,
// the authoritative arithmetic for the Hebrew calendar.
type HDateConverter struct {
	locale string
}

// Ensure HDateConverter implements the Converter interface
var _ Converter = (*HDateConverter)(nil)

// NewHDateConverter creates the production converter with Hebrew month
// names. It self-checks one conversion and returns ErrCalendarUnsupported
// if the result is unusable, so initialization fails closed rather than a
// later render producing partial data.
func NewHDateConverter() (*HDateConverter, error) {
	// The no-nikud locale renders month names as plain letters, matching
	// how the calendar is conventionally printed.
	c := &HDateConverter{locale: "he-x-NoNikud"}

	probe, err := c.Convert(domain.CivilDate{Year: 2024, Month: time.October, Day: 3})
	if err != nil {
		return nil, err
	}
	// 2024-10-03 is 1 Tishrei 5785; anything else means the oracle is broken.
	if probe.Day != 1 || probe.Year != 5785 || probe.MonthName == "" {
		return nil, fmt.Errorf("%w: self-check conversion returned %+v", ErrCalendarUnsupported, probe)
	}

	return c, nil
}

// Convert implements Converter.
func (c *HDateConverter) Convert(d domain.CivilDate) (domain.HebrewDate, error) {
	hd := hdate.FromGregorian(d.Year, d.Month, d.Day)

	day := hd.Day()
	monthName := hd.MonthName(c.locale)
	if day < 1 || day > 30 || monthName == "" {
		return domain.HebrewDate{}, fmt.Errorf("%w: conversion of %s produced day %d month %q",
			ErrCalendarUnsupported, d, day, monthName)
	}

	return domain.HebrewDate{
		Day:         day,
		MonthName:   monthName,
		Year:        hd.Year(),
		WeekdayName: weekdayNames[d.Weekday()],
	}, nil
}
