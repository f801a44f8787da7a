/*
hours.go - Contractual monthly working hours

PURPOSE:
  Computes the standard contractual hours for a pay period: 8 hours for
  every Monday-Friday day in the month. This number is the divisor that
  turns a monthly salary into an hourly wage.

HOLIDAY ASYMMETRY (intentional, tested):
  Holidays falling on weekdays still COUNT toward the standard hours.
  This function models contractual weekday hours only; holiday awareness
  belongs to the shift attribution and overtime logic, not to the wage
  baseline. A weekend day that is also a holiday is excluded exactly
  once, as a weekend.
*/
package calendar

import "github.com/shopspring/decimal"

// WorkdayHours is the contractual length of a working day.
var WorkdayHours = decimal.NewFromInt(8)

// StandardMonthlyHours returns the contractual working hours of the
// month containing the given date: 8h per non-weekend day.
func StandardMonthlyHours(d Date) decimal.Decimal {
	weekdays := 0
	for _, day := range MonthContaining(d).Days() {
		if !day.IsWeekend() {
			weekdays++
		}
	}
	return WorkdayHours.Mul(decimal.NewFromInt(int64(weekdays)))
}
