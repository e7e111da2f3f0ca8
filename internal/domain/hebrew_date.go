package domain

// HebrewDate is the Hebrew-calendar reading of a single civil date.
// It is derived data: never persisted, always recomputed on demand by a
// hebcal.Converter. Day is 1 exactly on the first civil date of a Hebrew
// month and nowhere else within that month.
type HebrewDate struct {
	// Day of the Hebrew month, 1..30.
	Day int

	// MonthName is the localized Hebrew month name (e.g. "תשרי").
	MonthName string

	// Year is the Hebrew year as an ordinary integer (e.g. 5785).
	Year int

	// WeekdayName is the localized weekday name (e.g. "יום ראשון").
	WeekdayName string
}
