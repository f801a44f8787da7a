package calendar_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/standby-engine/calendar"
)

func decimalFromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestDate_CalendarIdentity(t *testing.T) {
	// Dates are plain values: equal iff year/month/day match, and safe
	// as map keys.
	a := date(2024, time.April, 9)
	b := calendar.NewDate(2024, time.April, 9)
	assert.Equal(t, a, b)

	m := map[calendar.Date]int{a: 1}
	m[b] = 2
	assert.Len(t, m, 1)
}

func TestNewDate_NormalizesOverflow(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 1), calendar.NewDate(2024, time.January, 32))
}

func TestParseDate(t *testing.T) {
	d, err := calendar.ParseDate("2024-04-09")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.April, 9), d)

	_, err = calendar.ParseDate("09/04/2024")
	assert.Error(t, err)
	_, err = calendar.ParseDate("not-a-date")
	assert.Error(t, err)
}

func TestDate_Weekend(t *testing.T) {
	assert.True(t, date(2024, time.June, 8).IsWeekend(), "Saturday")
	assert.True(t, date(2024, time.June, 9).IsWeekend(), "Sunday")
	assert.False(t, date(2024, time.June, 10).IsWeekend(), "Monday")
}

func TestMonthContaining(t *testing.T) {
	p := calendar.MonthContaining(date(2024, time.February, 14))
	assert.Equal(t, date(2024, time.February, 1), p.Start)
	assert.Equal(t, date(2024, time.February, 29), p.End, "2024 is a leap year")
	assert.Len(t, p.Days(), 29)
}

// =============================================================================
// STANDARD MONTHLY HOURS
// =============================================================================

func TestStandardMonthlyHours_22WeekdayMonth(t *testing.T) {
	// GIVEN: April 2024, which has exactly 22 weekdays
	// THEN: 22 * 8 = 176 contractual hours

	hours := calendar.StandardMonthlyHours(date(2024, time.April, 15))
	assert.True(t, hours.Equal(decimalFromInt(176)), "got %s", hours)
}

func TestStandardMonthlyHours_LeapFebruary(t *testing.T) {
	// February 2024: 29 days, 21 weekdays
	hours := calendar.StandardMonthlyHours(date(2024, time.February, 1))
	assert.True(t, hours.Equal(decimalFromInt(168)), "got %s", hours)
}

func TestStandardMonthlyHours_HolidayOnWeekdayStillCounts(t *testing.T) {
	// GIVEN: December 2024, where Dec 24/25/26 are weekday holidays
	// THEN: They still count toward contractual hours (22 weekdays = 176).
	// Holiday-awareness belongs to shift/overtime logic, not the wage
	// baseline.

	hours := calendar.StandardMonthlyHours(date(2024, time.December, 1))
	assert.True(t, hours.Equal(decimalFromInt(176)), "got %s", hours)
}

func TestStandardMonthlyHours_AnyDayInMonthAgrees(t *testing.T) {
	first := calendar.StandardMonthlyHours(date(2024, time.April, 1))
	mid := calendar.StandardMonthlyHours(date(2024, time.April, 17))
	last := calendar.StandardMonthlyHours(date(2024, time.April, 30))
	assert.True(t, first.Equal(mid))
	assert.True(t, mid.Equal(last))
}
