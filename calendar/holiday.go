/*
holiday.go - National public-holiday resolution

PURPOSE:
  Answers "is this day a public holiday?" for any calendar date. The
  holiday set is derived, never stored: eleven fixed month+day holidays
  plus two movable feasts anchored to Easter Sunday (Good Friday two days
  before, Easter Monday one day after).

EASTER COMPUTATION:
  Easter Sunday is computed with the anonymous Gregorian algorithm
  (Meeus/Jones/Butcher), pure integer arithmetic on the year. Results are
  memoized per year; the cache is an optimization only and never changes
  observable behavior.

INHERITED BEHAVIOR:
  Easter Sunday itself is NOT a holiday here. Only the Friday before and
  the Monday after are. Standby on Easter Sunday still earns the weekend
  rate because the day is a Sunday, so the hour attribution is unchanged.

SEE ALSO:
  - date.go: Date type
  - hours.go: Contractual hours (deliberately holiday-blind)
*/
package calendar

import (
	"sort"
	"sync"
	"time"
)

// =============================================================================
// FIXED HOLIDAYS - Same month/day every year
// =============================================================================

type fixedHoliday struct {
	Month time.Month
	Day   int
}

var fixedHolidays = [...]fixedHoliday{
	{time.January, 1},
	{time.May, 1},
	{time.May, 8},
	{time.July, 5},
	{time.July, 6},
	{time.September, 28},
	{time.October, 28},
	{time.November, 17},
	{time.December, 24},
	{time.December, 25},
	{time.December, 26},
}

// =============================================================================
// EASTER - Movable feast anchor
// =============================================================================

var (
	easterMu    sync.RWMutex
	easterCache = map[int]Date{}
)

// EasterSunday returns Easter Sunday for the given year using the
// anonymous Gregorian computus (Meeus/Jones/Butcher).
func EasterSunday(year int) Date {
	easterMu.RLock()
	if d, ok := easterCache[year]; ok {
		easterMu.RUnlock()
		return d
	}
	easterMu.RUnlock()

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	sunday := NewDate(year, time.Month(month), day)

	easterMu.Lock()
	easterCache[year] = sunday
	easterMu.Unlock()
	return sunday
}

// GoodFriday is the Friday before Easter Sunday.
func GoodFriday(year int) Date { return EasterSunday(year).AddDays(-2) }

// EasterMonday is the Monday after Easter Sunday.
func EasterMonday(year int) Date { return EasterSunday(year).AddDays(1) }

// =============================================================================
// HOLIDAY RESOLVER
// =============================================================================

// IsHoliday reports whether the date is a public holiday. Total over all
// valid dates; never fails.
func IsHoliday(d Date) bool {
	for _, fh := range fixedHolidays {
		if d.Month == fh.Month && d.Day == fh.Day {
			return true
		}
	}
	return d == GoodFriday(d.Year) || d == EasterMonday(d.Year)
}

// HolidaysInYear returns every holiday date in the year, sorted. Exactly
// 13 dates: 11 fixed plus Good Friday and Easter Monday (the fixed set
// never collides with the Easter cycle).
func HolidaysInYear(year int) []Date {
	dates := make([]Date, 0, len(fixedHolidays)+2)
	for _, fh := range fixedHolidays {
		dates = append(dates, NewDate(year, fh.Month, fh.Day))
	}
	dates = append(dates, GoodFriday(year), EasterMonday(year))
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
