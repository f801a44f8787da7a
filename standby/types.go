/*
Package standby computes on-call standby compensation and overtime pay
for a monthly pay period.

PURPOSE:
  This is the compensation core: shift classification and hour
  attribution, work-log reconciliation against standby exposure, and the
  final monetary rollup. The core is synchronous, stateless, and pure:
  identical inputs always produce identical results. State ownership
  (shift sets, work logs, salary, profile) belongs entirely to the
  caller; see the state package.

KEY CONCEPTS IN THIS FILE (types.go):
  - ShiftVariant: Closed sum of the four on-call assignment kinds
  - ShiftSet: At most one assignment per date, mutated only via Toggle
  - WorkLogEntry: Hours actually worked while on standby
  - CompensationResult: The derived monetary figures

DESIGN PRINCIPLES:
  1. Precision: All hour and money arithmetic on decimal.Decimal. No
     rounding inside the core; formatting is a presentation concern.
  2. Exhaustiveness: ShiftVariant is handled exhaustively everywhere so
     a new variant cannot be silently ignored.
  3. Purity: No clocks, no I/O, no shared mutable state.

SEE ALSO:
  - shift.go: Standby hour attribution
  - worklog.go: Overtime bucketing and standby reconciliation
  - engine.go: The monetary rollup
  - rates.go: Rate profiles
*/
package standby

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
)

// =============================================================================
// SHIFT VARIANTS - Closed sum type
// =============================================================================

type ShiftVariant string

const (
	// VariantFull is a complete overnight/full-day standby block.
	VariantFull ShiftVariant = "full"

	// VariantStart is a mid-cycle takeover: 17:00-24:00 on a workday,
	// 09:00-24:00 on a non-workday.
	VariantStart ShiftVariant = "start"

	// VariantEnd is a morning handoff, 00:00-09:00 regardless of day type.
	VariantEnd ShiftVariant = "end"

	// VariantSplit is two disjoint windows, 00:00-09:00 plus 17:00-24:00.
	VariantSplit ShiftVariant = "split"
)

// ParseShiftVariant validates a variant tag coming from outside the core.
func ParseShiftVariant(s string) (ShiftVariant, error) {
	switch ShiftVariant(s) {
	case VariantFull, VariantStart, VariantEnd, VariantSplit:
		return ShiftVariant(s), nil
	}
	return "", &MalformedInputError{Field: "shift variant", Value: s, Cause: ErrUnknownShiftVariant}
}

// Next returns the variant that follows in the toggle cycle
// Full -> Start -> End -> Split -> removed. ok is false when the cycle
// ends and the assignment should be removed.
func (v ShiftVariant) Next() (next ShiftVariant, ok bool) {
	switch v {
	case VariantFull:
		return VariantStart, true
	case VariantStart:
		return VariantEnd, true
	case VariantEnd:
		return VariantSplit, true
	default:
		return "", false
	}
}

// =============================================================================
// SHIFT ASSIGNMENTS - One per date, toggled through the variant cycle
// =============================================================================

type ShiftAssignment struct {
	Date    calendar.Date
	Variant ShiftVariant
}

// ShiftSet holds at most one assignment per date.
type ShiftSet map[calendar.Date]ShiftVariant

// Toggle advances the date through the variant cycle. A fresh date
// becomes Full; a Split date is removed. Returns the resulting variant
// and whether the date still carries an assignment.
func (s ShiftSet) Toggle(date calendar.Date) (ShiftVariant, bool) {
	current, exists := s[date]
	if !exists {
		s[date] = VariantFull
		return VariantFull, true
	}
	next, ok := current.Next()
	if !ok {
		delete(s, date)
		return "", false
	}
	s[date] = next
	return next, true
}

// Assignments returns the set as a slice ordered by date.
func (s ShiftSet) Assignments() []ShiftAssignment {
	out := make([]ShiftAssignment, 0, len(s))
	for date, variant := range s {
		out = append(out, ShiftAssignment{Date: date, Variant: variant})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// =============================================================================
// WORK LOGS - Hours actually worked while on standby
// =============================================================================

// WorkLogEntry records hours actively worked on a date. Multiple entries
// may share a date; there is no uniqueness constraint.
type WorkLogEntry struct {
	ID    string
	Date  calendar.Date
	Hours decimal.Decimal

	// HolidayOverride forces holiday classification. Union semantics: it
	// can upgrade a normal day to holiday, never downgrade an
	// auto-detected holiday.
	HolidayOverride bool
}

// =============================================================================
// COMPENSATION RESULT - Derived, never stored
// =============================================================================

// CompensationResult is a pure function of the period inputs, recomputed
// on every change.
type CompensationResult struct {
	PayableStandbyHours decimal.Decimal
	WorkNormalHours     decimal.Decimal
	WorkHolidayHours    decimal.Decimal

	HourlyWage         decimal.Decimal
	StandbyFee         decimal.Decimal
	OvertimeNormalPay  decimal.Decimal
	OvertimeHolidayPay decimal.Decimal
	TotalBonus         decimal.Decimal
}
