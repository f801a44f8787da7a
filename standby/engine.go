/*
engine.go - The monetary rollup

PURPOSE:
  Combines the hourly wage (salary / effective monthly hours), the
  resolved rate table, and the two hour buckets into the final
  compensation figures:

    standbyFee         = payableStandby * wage * standbyRate
    overtimeNormalPay  = workNormal  * wage * (1 + otNormalRate)
    overtimeHolidayPay = workHoliday * wage * (1 + otHolidayRate)
    totalBonus         = sum of the three

  No rounding is applied anywhere in the rollup; display formatting is
  the caller's concern.

DEGRADATION:
  Zero or negative effective monthly hours yield a zero hourly wage (and
  thus a zero result), never an error. All other inputs are assumed
  pre-validated by the caller.
*/
package standby

import (
	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
)

// Input is the full set of pay-period inputs the caller owns.
type Input struct {
	Salary decimal.Decimal

	// Month identifies the pay period; any date within the month works.
	Month calendar.Date

	// MonthlyHoursOverride replaces the computed standard hours when
	// non-nil.
	MonthlyHoursOverride *decimal.Decimal

	Profile     RateProfile
	CustomRates RateTable

	Shifts   ShiftSet
	WorkLogs []WorkLogEntry
}

// EffectiveMonthlyHours returns the override when present, else the
// contractual standard hours of the month.
func (in Input) EffectiveMonthlyHours() decimal.Decimal {
	if in.MonthlyHoursOverride != nil {
		return *in.MonthlyHoursOverride
	}
	return calendar.StandardMonthlyHours(in.Month)
}

// Compute runs the full pipeline: attribution, reconciliation, rollup.
// Deterministic and idempotent; identical inputs produce identical
// results. The only error conditions are malformed variant or profile
// tags, in which case no result is produced.
func Compute(in Input) (CompensationResult, error) {
	rates, err := ResolveRates(in.Profile, in.CustomRates)
	if err != nil {
		return CompensationResult{}, err
	}

	totalStandby, err := AttributeStandbyHours(in.Shifts)
	if err != nil {
		return CompensationResult{}, err
	}

	rec := Reconcile(in.WorkLogs, totalStandby)

	wage := decimal.Zero
	if effective := in.EffectiveMonthlyHours(); effective.IsPositive() {
		wage = in.Salary.Div(effective)
	}

	one := decimal.NewFromInt(1)
	standbyFee := rec.PayableStandby.Mul(wage).Mul(rates.Standby)
	otNormalPay := rec.WorkNormal.Mul(wage).Mul(one.Add(rates.OvertimeNormal))
	otHolidayPay := rec.WorkHoliday.Mul(wage).Mul(one.Add(rates.OvertimeHoliday))

	return CompensationResult{
		PayableStandbyHours: rec.PayableStandby,
		WorkNormalHours:     rec.WorkNormal,
		WorkHolidayHours:    rec.WorkHoliday,
		HourlyWage:          wage,
		StandbyFee:          standbyFee,
		OvertimeNormalPay:   otNormalPay,
		OvertimeHolidayPay:  otHolidayPay,
		TotalBonus:          standbyFee.Add(otNormalPay).Add(otHolidayPay),
	}, nil
}
