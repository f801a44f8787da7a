/*
shift.go - Standby hour attribution

PURPOSE:
  Converts a set of shift assignments into total standby-hour exposure.
  Each variant contributes a fixed number of hours depending on whether
  the date is a plain weekday or a weekend/holiday:

    Variant | Weekday | Weekend/Holiday
    --------+---------+----------------
    Full    |   16    |   24
    Start   |    7    |   15
    End     |    9    |    9
    Split   |   16    |   16

  Full models a complete standby block (outside working hours on a
  workday, the whole day otherwise). Start takes over mid-cycle, End is
  the morning handoff, Split covers the two windows around a worked day.
  Hours sum across all assignments with no cap; the one-assignment-per-
  date invariant is enforced by ShiftSet itself.
*/
package standby

import (
	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
)

var (
	hoursFullWeekday  = decimal.NewFromInt(16)
	hoursFullOffDay   = decimal.NewFromInt(24)
	hoursStartWeekday = decimal.NewFromInt(7)
	hoursStartOffDay  = decimal.NewFromInt(15)
	hoursEnd          = decimal.NewFromInt(9)
	hoursSplit        = decimal.NewFromInt(16)
)

// IsOffDay reports whether a date is compensated at the weekend/holiday
// rate: Saturdays, Sundays, and public holidays.
func IsOffDay(d calendar.Date) bool {
	return d.IsWeekend() || calendar.IsHoliday(d)
}

// VariantHours returns the standby hours a single assignment contributes.
// The switch is exhaustive over the closed variant set; anything else is
// malformed input.
func VariantHours(variant ShiftVariant, date calendar.Date) (decimal.Decimal, error) {
	offDay := IsOffDay(date)
	switch variant {
	case VariantFull:
		if offDay {
			return hoursFullOffDay, nil
		}
		return hoursFullWeekday, nil
	case VariantStart:
		if offDay {
			return hoursStartOffDay, nil
		}
		return hoursStartWeekday, nil
	case VariantEnd:
		return hoursEnd, nil
	case VariantSplit:
		return hoursSplit, nil
	default:
		return decimal.Zero, &MalformedInputError{Field: "shift variant", Value: string(variant), Cause: ErrUnknownShiftVariant}
	}
}

// AttributeStandbyHours sums standby exposure across all assignments.
func AttributeStandbyHours(shifts ShiftSet) (decimal.Decimal, error) {
	total := decimal.Zero
	for date, variant := range shifts {
		hours, err := VariantHours(variant, date)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(hours)
	}
	return total, nil
}
