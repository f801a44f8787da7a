// Package memory provides an in-memory Store implementation for testing
// and development.
package memory

import (
	"context"
	"sync"

	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
	"github.com/warp/standby-engine/state"
)

// =============================================================================
// MEMORY STORE
// =============================================================================

type Memory struct {
	mu      sync.RWMutex
	periods map[calendar.Date]*state.PeriodState
}

func New() *Memory {
	return &Memory{periods: make(map[calendar.Date]*state.PeriodState)}
}

// getLocked returns the period for the month, creating an empty one on
// first touch. Callers hold the write lock.
func (m *Memory) getLocked(month calendar.Date) *state.PeriodState {
	key := state.MonthKey(month)
	ps, ok := m.periods[key]
	if !ok {
		ps = state.NewPeriodState(key)
		m.periods[key] = ps
	}
	return ps
}

func (m *Memory) LoadPeriod(_ context.Context, month calendar.Date) (*state.PeriodState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clonePeriod(m.getLocked(month)), nil
}

func (m *Memory) SaveSettings(_ context.Context, month calendar.Date, s state.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getLocked(month).Settings = s
	return nil
}

func (m *Memory) ToggleShift(_ context.Context, month calendar.Date, date calendar.Date) (standby.ShiftVariant, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	variant, ok := m.getLocked(month).Shifts.Toggle(date)
	return variant, ok, nil
}

func (m *Memory) PutWorkLog(_ context.Context, month calendar.Date, entry standby.WorkLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ps := m.getLocked(month)
	for i, existing := range ps.WorkLogs {
		if existing.ID == entry.ID {
			ps.WorkLogs[i] = entry
			return nil
		}
	}
	ps.WorkLogs = append(ps.WorkLogs, entry)
	return nil
}

func (m *Memory) DeleteWorkLog(_ context.Context, month calendar.Date, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ps := m.getLocked(month)
	for i, existing := range ps.WorkLogs {
		if existing.ID == id {
			ps.WorkLogs = append(ps.WorkLogs[:i], ps.WorkLogs[i+1:]...)
			return nil
		}
	}
	return state.ErrWorkLogNotFound
}

func (m *Memory) ReplaceShifts(_ context.Context, month calendar.Date, shifts standby.ShiftSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replacement := standby.ShiftSet{}
	for date, variant := range shifts {
		replacement[date] = variant
	}
	m.getLocked(month).Shifts = replacement
	return nil
}

func (m *Memory) Close() error { return nil }

// clonePeriod copies the state so callers cannot mutate the store
// through the returned maps and slices.
func clonePeriod(ps *state.PeriodState) *state.PeriodState {
	clone := &state.PeriodState{
		Month:    ps.Month,
		Settings: ps.Settings,
		Shifts:   standby.ShiftSet{},
		WorkLogs: append([]standby.WorkLogEntry(nil), ps.WorkLogs...),
	}
	if ps.Settings.MonthlyHoursOverride != nil {
		override := *ps.Settings.MonthlyHoursOverride
		clone.Settings.MonthlyHoursOverride = &override
	}
	for date, variant := range ps.Shifts {
		clone.Shifts[date] = variant
	}
	return clone
}
