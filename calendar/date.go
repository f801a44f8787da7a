/*
Package calendar provides the date primitives for the standby
compensation engine.

PURPOSE:
  Everything in this system is keyed by plain calendar days: shift
  assignments, work-log entries, holidays, and the monthly pay period.
  This package owns the Date value type, the national-holiday resolver,
  and the contractual monthly-hours calculation.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A calendar day (year/month/day), never a point in time
  - Period: An inclusive day range, used for month enumeration

DESIGN PRINCIPLES:
  1. Calendar identity: Two Dates are equal iff year, month, and day
     match. There is no time-of-day and no timezone.
  2. Comparability: Date is a plain comparable struct, safe as a map key.
  3. Purity: Every function is deterministic with no side effects.

SEE ALSO:
  - holiday.go: Fixed-table and Easter-relative holiday resolution
  - hours.go: Contractual monthly working hours
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - A calendar day, compared only by calendar identity
// =============================================================================

type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date, normalizing out-of-range components the way
// time.Date does (e.g., day 32 of January becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO date ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// Time returns the Date as UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time().Before(other.Time()) }
func (d Date) After(other Date) bool  { return d.Time().After(other.Time()) }
func (d Date) Equal(other Date) bool  { return d == other }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date   { t := d.Time().AddDate(0, 0, n); return NewDate(t.Year(), t.Month(), t.Day()) }
func (d Date) AddMonths(n int) Date { t := d.Time().AddDate(0, n, 0); return NewDate(t.Year(), t.Month(), t.Day()) }

// Properties
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }
func (d Date) IsWeekend() bool       { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (d Date) IsZero() bool          { return d == Date{} }

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// =============================================================================
// PERIOD - Inclusive day range
// =============================================================================

type Period struct {
	Start Date
	End   Date
}

// Contains returns true if the date is within the period [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns every day in the period in order.
func (p Period) Days() []Date {
	var days []Date
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// MonthContaining returns the period spanning the calendar month that
// holds the given date.
func MonthContaining(d Date) Period {
	first := NewDate(d.Year, d.Month, 1)
	last := first.AddMonths(1).AddDays(-1)
	return Period{Start: first, End: last}
}
