/*
worklog.go - Overtime bucketing and standby reconciliation

PURPOSE:
  Splits worked hours into normal and holiday overtime buckets, and
  computes the net payable standby after subtracting actual work from
  standby exposure. Hours that were both "on standby" and "actively
  worked" are compensated once, as overtime, never twice.

GLOBAL SUBTRACTION:
  The subtraction is global across the whole period, not matched per
  day: a worked hour on one date offsets standby exposure accrued on a
  different date. Inherited behavior, preserved deliberately; see
  DESIGN.md for the open question.
*/
package standby

import (
	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
)

// Reconciliation is the output of reconciling work logs against standby
// exposure.
type Reconciliation struct {
	WorkNormal     decimal.Decimal
	WorkHoliday    decimal.Decimal
	PayableStandby decimal.Decimal
}

// Reconcile buckets each entry's hours by holiday status and nets the
// total worked duration off the standby pool. Holiday status is the
// union of auto-detection and the entry's override: an override can
// upgrade a day to holiday but never downgrade a detected holiday.
func Reconcile(entries []WorkLogEntry, totalStandbyHours decimal.Decimal) Reconciliation {
	r := Reconciliation{
		WorkNormal:  decimal.Zero,
		WorkHoliday: decimal.Zero,
	}

	worked := decimal.Zero
	for _, entry := range entries {
		if entry.HolidayOverride || calendar.IsHoliday(entry.Date) {
			r.WorkHoliday = r.WorkHoliday.Add(entry.Hours)
		} else {
			r.WorkNormal = r.WorkNormal.Add(entry.Hours)
		}
		worked = worked.Add(entry.Hours)
	}

	r.PayableStandby = totalStandbyHours.Sub(worked)
	if r.PayableStandby.IsNegative() {
		r.PayableStandby = decimal.Zero
	}
	return r
}
