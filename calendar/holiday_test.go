package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/standby-engine/calendar"
)

func date(year int, month time.Month, day int) calendar.Date {
	return calendar.NewDate(year, month, day)
}

// =============================================================================
// EASTER COMPUTATION
// =============================================================================

func TestEasterSunday_KnownYears(t *testing.T) {
	cases := []struct {
		year     int
		expected calendar.Date
	}{
		{2016, date(2016, time.March, 27)},
		{2020, date(2020, time.April, 12)},
		{2024, date(2024, time.March, 31)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 5)},
		{2038, date(2038, time.April, 25)}, // latest possible Easter
	}

	for _, tc := range cases {
		got := calendar.EasterSunday(tc.year)
		if got != tc.expected {
			t.Errorf("EasterSunday(%d) = %s, want %s", tc.year, got, tc.expected)
		}
	}
}

func TestEasterSunday_MemoizationIsStable(t *testing.T) {
	// Repeated lookups must return the identical date.
	first := calendar.EasterSunday(2024)
	second := calendar.EasterSunday(2024)
	assert.Equal(t, first, second)
}

// =============================================================================
// HOLIDAY RESOLVER
// =============================================================================

func TestIsHoliday_MovableFeasts2024(t *testing.T) {
	// GIVEN: The 2024 Easter cycle (Easter Sunday = March 31)
	// THEN: Good Friday (March 29) and Easter Monday (April 1) are holidays

	assert.True(t, calendar.IsHoliday(date(2024, time.March, 29)), "Good Friday 2024")
	assert.True(t, calendar.IsHoliday(date(2024, time.April, 1)), "Easter Monday 2024")
}

func TestIsHoliday_EasterSundayItselfIsNot(t *testing.T) {
	// Inherited behavior: only the Friday before and Monday after count.
	assert.False(t, calendar.IsHoliday(date(2024, time.March, 31)))
	assert.False(t, calendar.IsHoliday(date(2025, time.April, 20)))
}

func TestIsHoliday_FixedDates(t *testing.T) {
	fixed := []calendar.Date{
		date(2024, time.January, 1),
		date(2024, time.May, 1),
		date(2024, time.May, 8),
		date(2024, time.July, 5),
		date(2024, time.July, 6),
		date(2024, time.September, 28),
		date(2024, time.October, 28),
		date(2024, time.November, 17),
		date(2024, time.December, 24),
		date(2024, time.December, 25),
		date(2024, time.December, 26),
	}
	for _, d := range fixed {
		if !calendar.IsHoliday(d) {
			t.Errorf("expected %s to be a holiday", d)
		}
	}

	// Fixed dates hold in any year
	assert.True(t, calendar.IsHoliday(date(1999, time.December, 25)))
	assert.True(t, calendar.IsHoliday(date(2031, time.May, 1)))
}

func TestIsHoliday_PlainDays(t *testing.T) {
	assert.False(t, calendar.IsHoliday(date(2024, time.June, 11)), "plain Tuesday")
	assert.False(t, calendar.IsHoliday(date(2024, time.July, 4)), "day before a holiday")
	assert.False(t, calendar.IsHoliday(date(2024, time.February, 29)), "leap day")
}

func TestHolidaysInYear_ExactlyThirteen(t *testing.T) {
	// GIVEN: Any calendar year
	// THEN: Exactly 13 holidays exist (11 fixed + 2 movable)

	for year := 2020; year <= 2030; year++ {
		dates := calendar.HolidaysInYear(year)
		require.Len(t, dates, 13, "year %d", year)

		seen := map[calendar.Date]bool{}
		for _, d := range dates {
			assert.True(t, calendar.IsHoliday(d), "%s should resolve as holiday", d)
			assert.False(t, seen[d], "duplicate holiday %s", d)
			seen[d] = true
		}
	}
}

func TestHolidaysInYear_Sorted(t *testing.T) {
	dates := calendar.HolidaysInYear(2024)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]), "holidays must be sorted")
	}
}
