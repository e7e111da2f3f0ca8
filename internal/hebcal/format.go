package hebcal

import (
	"fmt"

	"github.com/luachlab/luach-api/internal/domain"
	"github.com/luachlab/luach-api/internal/hebcal/gematria"
)

// FormatFull renders the traditional full reading of a civil date:
// "<weekday>, <day> ב<month>, <year>", with day and year as
// letter-numerals, e.g. "יום שישי, ח באלול, ה׳תשפ״ה".
func (e *Engine) FormatFull(d domain.CivilDate) (string, error) {
	parts, err := e.conv.Convert(d)
	if err != nil {
		return "", err
	}

	day, err := gematria.Day(parts.Day)
	if err != nil {
		return "", err
	}
	year, err := gematria.Year(parts.Year)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s, %s ב%s, %s", parts.WeekdayName, day, parts.MonthName, year), nil
}

// MonthTitle renders the header of a month view: the month name followed
// by the year letter-numeral, e.g. "אלול ה׳תשפ״ה".
func (e *Engine) MonthTitle(monthStart domain.CivilDate) (string, error) {
	parts, err := e.conv.Convert(monthStart)
	if err != nil {
		return "", err
	}

	year, err := gematria.Year(parts.Year)
	if err != nil {
		return "", err
	}

	return parts.MonthName + " " + year, nil
}
