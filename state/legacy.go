/*
legacy.go - One-time normalization of legacy persisted shapes

PURPOSE:
  An earlier version of this system stored shift assignments as a bare
  array of date strings with an implicit Full variant and no per-date
  variant tag. That shape is normalized here, in the loader, before any
  core call. The core itself accepts only canonical typed shapes and
  performs no schema migration.
*/
package state

import (
	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
)

// NormalizeLegacyShifts converts a legacy bare-date-string array into a
// canonical ShiftSet. Every legacy entry becomes a Full assignment;
// duplicate dates collapse to one. Unparsable dates signal the core's
// MalformedInput condition and nothing is imported.
func NormalizeLegacyShifts(dates []string) (standby.ShiftSet, error) {
	shifts := standby.ShiftSet{}
	for _, raw := range dates {
		date, err := calendar.ParseDate(raw)
		if err != nil {
			return nil, &standby.MalformedInputError{Field: "legacy shift date", Value: raw, Cause: err}
		}
		shifts[date] = standby.VariantFull
	}
	return shifts, nil
}
