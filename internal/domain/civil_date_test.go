package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCivilDate(t *testing.T) {
	t.Parallel()

	t.Run("valid date", func(t *testing.T) {
		t.Parallel()
		d, err := NewCivilDate(2025, time.September, 1)
		require.NoError(t, err)
		assert.Equal(t, "2025-09-01", d.ISO())
	})

	t.Run("leap day", func(t *testing.T) {
		t.Parallel()
		_, err := NewCivilDate(2024, time.February, 29)
		assert.NoError(t, err)
	})

	t.Run("impossible date", func(t *testing.T) {
		t.Parallel()
		_, err := NewCivilDate(2025, time.February, 30)
		assert.ErrorIs(t, err, ErrInvalidCivilDate)
	})

	t.Run("day zero", func(t *testing.T) {
		t.Parallel()
		_, err := NewCivilDate(2025, time.March, 0)
		assert.ErrorIs(t, err, ErrInvalidCivilDate)
	})
}

func TestParseCivilDate(t *testing.T) {
	t.Parallel()

	t.Run("valid iso string", func(t *testing.T) {
		t.Parallel()
		d, err := ParseCivilDate("2024-10-03")
		require.NoError(t, err)
		assert.Equal(t, 2024, d.Year)
		assert.Equal(t, time.October, d.Month)
		assert.Equal(t, 3, d.Day)
	})

	t.Run("malformed strings", func(t *testing.T) {
		t.Parallel()
		for _, s := range []string{"", "2024-13-01", "2024-02-30", "03/10/2024", "2024-10-3"} {
			_, err := ParseCivilDate(s)
			assert.ErrorIs(t, err, ErrInvalidCivilDate, "input %q", s)
		}
	})
}

func TestCivilDateAddDays(t *testing.T) {
	t.Parallel()

	d, err := NewCivilDate(2024, time.December, 30)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-02", d.AddDays(3).ISO())
	assert.Equal(t, "2024-12-29", d.AddDays(-1).ISO())
	assert.Equal(t, d, d.AddDays(0))
}

func TestCivilDateCivilTag(t *testing.T) {
	t.Parallel()

	d, err := NewCivilDate(2025, time.September, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.9", d.CivilTag())
}

func TestCivilDateBefore(t *testing.T) {
	t.Parallel()

	a, err := NewCivilDate(2025, time.May, 1)
	require.NoError(t, err)
	b := a.AddDays(1)

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
