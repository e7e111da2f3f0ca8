// Package gematria renders integers as traditional Hebrew letter-numerals.
//
// Two rule sets exist: day-of-month numerals (1..30) built from fixed tens
// and ones tables, and year numerals built by greedy decomposition through
// hundreds, tens and ones tiers. Both apply the orthographic exceptions for
// 15 and 16, which are never written as יה or יו because those sequences
// spell divine-name fragments; the conventional substitutes ט״ו and ט״ז are
// used instead. Output is table-driven and bit-exact.
package gematria

import (
	"errors"
	"fmt"
	"strings"
)

// Punctuation used in letter-numerals: gershayim before the final letter
// of a multi-letter numeral, geresh after the millennium marker.
const (
	gershayim = "״" // ״
	geresh    = "׳" // ׳
)

// yearPrefix marks a numeral as a Hebrew-calendar year. The fifth
// millennium letter ה is written explicitly; the thousands themselves are
// conventionally omitted from the numeral body.
const yearPrefix = "ה" + geresh

// ErrOutOfRange is returned when a number falls outside the documented
// domain of an encoder.
var ErrOutOfRange = errors.New("number out of range for gematria encoding")

var dayOnes = []string{"", "א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט"}

var dayTens = []string{"", "י", "כ", "ל"}

// Ranked value tables for year decomposition. Letters repeat for values
// above the largest entry of a tier (500 is תק, 900 is תתק).
var yearTiers = []struct {
	value  int
	letter string
}{
	{400, "ת"}, {300, "ש"}, {200, "ר"}, {100, "ק"},
	{90, "צ"}, {80, "פ"}, {70, "ע"}, {60, "ס"}, {50, "נ"},
	{40, "מ"}, {30, "ל"}, {20, "כ"}, {10, "י"},
	{9, "ט"}, {8, "ח"}, {7, "ז"}, {6, "ו"}, {5, "ה"},
	{4, "ד"}, {3, "ג"}, {2, "ב"}, {1, "א"},
}

// Day returns the letter-numeral for a Hebrew day of month, 1..30.
// Multi-letter numerals carry gershayim before the final letter; single
// letters are written bare. 15 and 16 use their substitute forms.
func Day(n int) (string, error) {
	if n < 1 || n > 30 {
		return "", fmt.Errorf("%w: day %d", ErrOutOfRange, n)
	}

	switch n {
	case 15:
		return "ט" + gershayim + "ו", nil
	case 16:
		return "ט" + gershayim + "ז", nil
	}

	s := dayTens[n/10] + dayOnes[n%10]
	return markFinal(s), nil
}

// Year returns the letter-numeral for a Hebrew year, prefixed with the
// millennium marker ה׳. The numeral body encodes n mod 1000 by greedy
// decomposition; the substrings יה and יו are rewritten to their
// substitute forms before punctuation is applied. A year that is an exact
// multiple of 1000 yields the bare prefix.
func Year(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("%w: year %d", ErrOutOfRange, n)
	}

	rest := n % 1000
	var b strings.Builder
	for _, tier := range yearTiers {
		for rest >= tier.value {
			b.WriteString(tier.letter)
			rest -= tier.value
		}
	}

	s := b.String()
	// Euphemism rewrite happens before the gershayim is inserted so the
	// final numeral carries exactly one mark.
	if strings.HasSuffix(s, "יה") {
		s = strings.TrimSuffix(s, "יה") + "טו"
	} else if strings.HasSuffix(s, "יו") {
		s = strings.TrimSuffix(s, "יו") + "טז"
	}

	return yearPrefix + markFinal(s), nil
}

// markFinal inserts gershayim before the last letter of a multi-letter
// numeral. Single letters and the empty string pass through unchanged.
func markFinal(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	return string(runes[:len(runes)-1]) + gershayim + string(runes[len(runes)-1])
}
