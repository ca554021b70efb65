// File: services/assistant/dates_test.go
package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	today := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"empty", "", "", false},
		{"gibberish", "banana", "", false},
		{"today", "today", "2025-10-01", true},
		{"tomorrow", "tomorrow", "2025-10-02", true},
		{"next week", "next week", "2025-10-08", true},
		{"in N days", "in 3 days", "2025-10-04", true},
		{"in 1 day", "in 1 day", "2025-10-02", true},
		{"iso future", "2025-11-15", "2025-11-15", true},
		{"iso past rolls forward", "2025-04-01", "2026-04-01", true},
		{"iso invalid day", "2025-02-30", "", false},
		{"full date future", "11 december 2025", "2025-12-11", true},
		{"full date past rolls forward", "11 march 2025", "2026-03-11", true},
		{"full date invalid", "31 february 2025", "", false},
		{"month day", "december 4", "2025-12-04", true},
		{"month day past rolls forward", "march 4", "2026-03-04", true},
		{"day month ordinal", "4th december", "2025-12-04", true},
		{"sept abbreviation", "sept 15", "2026-09-15", true},
		{"anchor date itself keeps year", "october 1", "2025-10-01", true},
		{"slashed future", "15/11/2025", "2025-11-15", true},
		{"slashed past adds a year", "15/03/2025", "2026-03-15", true},
		{"mixed case", "December 4", "2025-12-04", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeDate(tc.in, today)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeDateOutputAlwaysParses(t *testing.T) {
	today := time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)
	inputs := []string{"today", "tomorrow", "next week", "in 10 days", "december 4", "2025-11-15", "15/11/2025", "11 december 2025"}
	for _, in := range inputs {
		got, ok := NormalizeDate(in, today)
		require.True(t, ok, in)
		parsed, err := time.Parse("2006-01-02", got)
		require.NoError(t, err, in)
		assert.False(t, parsed.Before(today), "normalized date %s for %q is in the past", got, in)
	}
}

func TestAddDaysISO(t *testing.T) {
	got, ok := addDaysISO("2025-10-01", 5)
	require.True(t, ok)
	assert.Equal(t, "2025-10-06", got)

	got, ok = addDaysISO("2025-12-30", 5)
	require.True(t, ok)
	assert.Equal(t, "2026-01-04", got)

	_, ok = addDaysISO("not-a-date", 5)
	assert.False(t, ok)
}

func TestFormatTravelDate(t *testing.T) {
	assert.Equal(t, "Saturday, November 15, 2025", formatTravelDate("2025-11-15"))
	assert.Equal(t, "junk", formatTravelDate("junk"))
}
