/*
rates.go - Rate profiles and multiplier tables

PURPOSE:
  Resolves a role profile (or a custom override) to the three multipliers
  the engine applies: the standby fraction of the hourly wage and the two
  overtime surcharges (normal and holiday).

PROFILES:
  DevOpsInfra:   0.2 / 0.5 / 1.5 - infra on-call, above statutory rates
  OtherEmployee: 0.1 / 0.25 / 1.0 - statutory minimums
  Custom:        user-supplied triple, used verbatim

  Only Custom carries editable values; the other two are fixed constants.
*/
package standby

import "github.com/shopspring/decimal"

// =============================================================================
// RATE PROFILES
// =============================================================================

type RateProfile string

const (
	ProfileDevOpsInfra   RateProfile = "devops_infra"
	ProfileOtherEmployee RateProfile = "other_employee"
	ProfileCustom        RateProfile = "custom"
)

// RateTable is the resolved multiplier triple.
type RateTable struct {
	// Standby is the fraction of the hourly wage paid per payable
	// standby hour.
	Standby decimal.Decimal

	// OvertimeNormal and OvertimeHoliday are surcharges: worked hours pay
	// wage * (1 + multiplier).
	OvertimeNormal  decimal.Decimal
	OvertimeHoliday decimal.Decimal
}

var profileRates = map[RateProfile]RateTable{
	ProfileDevOpsInfra: {
		Standby:         decimal.NewFromFloat(0.2),
		OvertimeNormal:  decimal.NewFromFloat(0.5),
		OvertimeHoliday: decimal.NewFromFloat(1.5),
	},
	ProfileOtherEmployee: {
		Standby:         decimal.NewFromFloat(0.1),
		OvertimeNormal:  decimal.NewFromFloat(0.25),
		OvertimeHoliday: decimal.NewFromFloat(1.0),
	},
}

// ParseRateProfile validates a profile tag coming from outside the core.
func ParseRateProfile(s string) (RateProfile, error) {
	switch RateProfile(s) {
	case ProfileDevOpsInfra, ProfileOtherEmployee, ProfileCustom:
		return RateProfile(s), nil
	}
	return "", &MalformedInputError{Field: "rate profile", Value: s, Cause: ErrUnknownRateProfile}
}

// ResolveRates returns the multiplier table for a profile. The custom
// table is consulted only when the profile is Custom.
func ResolveRates(profile RateProfile, custom RateTable) (RateTable, error) {
	if profile == ProfileCustom {
		return custom, nil
	}
	table, ok := profileRates[profile]
	if !ok {
		return RateTable{}, &MalformedInputError{Field: "rate profile", Value: string(profile), Cause: ErrUnknownRateProfile}
	}
	return table, nil
}
