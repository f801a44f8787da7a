/*
Package state owns the pay-period inputs the compensation core does not.

PURPOSE:
  The core in the standby package is stateless per call; the assignment
  set, work logs, salary, and profile for each month live here. Store is
  the persistence boundary: a per-month keyed state the API layer reads,
  mutates, and feeds back into standby.Compute.

IMPLEMENTATIONS:
  - state/sqlite: production store on SQLite
  - state/memory: in-memory store for tests and dev

LEGACY STATE:
  Older persisted shapes (bare date-string arrays with an implicit Full
  variant) are normalized HERE, before any core call. The core only ever
  sees canonical typed shapes. See legacy.go.

SEE ALSO:
  - standby/engine.go: Consumes PeriodState via standby.Input
*/
package state

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrWorkLogNotFound is returned when updating or deleting a work log
	// entry that does not exist in the period.
	ErrWorkLogNotFound = errors.New("work log entry not found")
)

// =============================================================================
// PERIOD STATE - Everything the engine needs for one month
// =============================================================================

// Settings are the scalar inputs of a pay period.
type Settings struct {
	Salary               decimal.Decimal
	Profile              standby.RateProfile
	CustomRates          standby.RateTable
	MonthlyHoursOverride *decimal.Decimal
}

// PeriodState is the full persisted state of one monthly pay period,
// keyed by the first day of the month.
type PeriodState struct {
	Month    calendar.Date
	Settings Settings
	Shifts   standby.ShiftSet
	WorkLogs []standby.WorkLogEntry
}

// NewPeriodState returns an empty state with domain defaults.
func NewPeriodState(month calendar.Date) *PeriodState {
	return &PeriodState{
		Month:    calendar.NewDate(month.Year, month.Month, 1),
		Settings: Settings{Profile: standby.ProfileDevOpsInfra},
		Shifts:   standby.ShiftSet{},
	}
}

// Input assembles the core engine input from the persisted state.
func (ps *PeriodState) Input() standby.Input {
	return standby.Input{
		Salary:               ps.Settings.Salary,
		Month:                ps.Month,
		MonthlyHoursOverride: ps.Settings.MonthlyHoursOverride,
		Profile:              ps.Settings.Profile,
		CustomRates:          ps.Settings.CustomRates,
		Shifts:               ps.Shifts,
		WorkLogs:             ps.WorkLogs,
	}
}

// =============================================================================
// STORE - Persistence boundary, keyed by month
// =============================================================================

// Store persists pay-period inputs. Months without stored state load as
// empty periods with defaults; reads never fail on absence.
type Store interface {
	// LoadPeriod returns the state for the month containing the date.
	LoadPeriod(ctx context.Context, month calendar.Date) (*PeriodState, error)

	// SaveSettings replaces the scalar settings of the period.
	SaveSettings(ctx context.Context, month calendar.Date, s Settings) error

	// ToggleShift cycles the date through the variant cycle and persists
	// the outcome. Returns the resulting variant and whether the date
	// still carries an assignment.
	ToggleShift(ctx context.Context, month calendar.Date, date calendar.Date) (standby.ShiftVariant, bool, error)

	// PutWorkLog inserts or replaces a work log entry by ID.
	PutWorkLog(ctx context.Context, month calendar.Date, entry standby.WorkLogEntry) error

	// DeleteWorkLog removes an entry by ID. ErrWorkLogNotFound if absent.
	DeleteWorkLog(ctx context.Context, month calendar.Date, id string) error

	// ReplaceShifts swaps the whole assignment set (legacy import).
	ReplaceShifts(ctx context.Context, month calendar.Date, shifts standby.ShiftSet) error

	Close() error
}

// MonthKey normalizes any date to its period key (first of the month).
func MonthKey(d calendar.Date) calendar.Date {
	return calendar.NewDate(d.Year, d.Month, 1)
}
