package hebcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luachlab/luach-api/internal/domain"
)

func fixedEngine(parts domain.HebrewDate) *Engine {
	return New(&fakeConverter{
		convert: func(d domain.CivilDate) (domain.HebrewDate, error) {
			return parts, nil
		},
	})
}

func TestFormatFull(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts domain.HebrewDate
		want  string
	}{
		{
			name: "single-letter day",
			parts: domain.HebrewDate{
				Day: 8, MonthName: "אלול", Year: 5785, WeekdayName: "יום שישי",
			},
			want: "יום שישי, ח באלול, ה׳תשפ״ה",
		},
		{
			name: "two-letter day carries gershayim",
			parts: domain.HebrewDate{
				Day: 23, MonthName: "ניסן", Year: 5784, WeekdayName: "שבת",
			},
			want: "שבת, כ״ג בניסן, ה׳תשפ״ד",
		},
		{
			name: "fifteenth uses the substitute numeral",
			parts: domain.HebrewDate{
				Day: 15, MonthName: "שבט", Year: 5785, WeekdayName: "יום רביעי",
			},
			want: "יום רביעי, ט״ו בשבט, ה׳תשפ״ה",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := fixedEngine(tc.parts).FormatFull(domain.CivilDate{Year: 2025, Month: time.September, Day: 1})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMonthTitle(t *testing.T) {
	t.Parallel()

	engine := fixedEngine(domain.HebrewDate{
		Day: 1, MonthName: "תשרי", Year: 5785, WeekdayName: "יום חמישי",
	})
	got, err := engine.MonthTitle(domain.CivilDate{Year: 2024, Month: time.October, Day: 3})
	require.NoError(t, err)
	assert.Equal(t, "תשרי ה׳תשפ״ה", got)
}
