package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	d, err := ParseDateString("2025-07-10")
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-07-10"), d)
}

func TestParseDateString_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-date",
		"2025-13-01",
		"2025-02-30",
		"2025-7-1",       // unpadded
		"10-07-2025",     // wrong order
		"2025/07/10",     // wrong separator
		"2025-07-10T00Z", // timestamp, not a date
	}

	for _, raw := range cases {
		_, err := ParseDateString(raw)
		assert.ErrorIs(t, err, ErrInvalidDateString, "input %q", raw)
	}
}

func TestNewDateString_DropsTimePart(t *testing.T) {
	moment := time.Date(2025, 7, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DateString("2025-07-10"), NewDateString(moment))
}

func TestDateString_AddDays(t *testing.T) {
	d := DateString("2025-07-31")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-08-01"), next)

	prev, err := d.AddDays(-31)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-06-30"), prev)
}

func TestDateString_Ordering(t *testing.T) {
	earlier := DateString("2025-07-09")
	later := DateString("2025-07-10")

	assert.True(t, earlier.Before(later))
	assert.True(t, later.After(earlier))
	assert.False(t, earlier.Before(earlier))
	assert.False(t, earlier.After(earlier))

	// Cross-month and cross-year boundaries still order correctly as strings.
	assert.True(t, DateString("2025-09-30").Before(DateString("2025-10-01")))
	assert.True(t, DateString("2025-12-31").Before(DateString("2026-01-01")))
}
