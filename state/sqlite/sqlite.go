/*
Package sqlite provides the SQLite-backed Store implementation.

PURPOSE:
  Persists pay-period inputs (settings, shift assignments, work logs)
  across sessions. The compensation core never sees this package; the
  API layer loads a PeriodState here and hands the canonical shapes to
  the engine.

KEY TABLES:
  periods:           Scalar settings per month (salary, profile, rates)
  shift_assignments: One row per assigned date, variant-tagged
  work_logs:         Zero or more entries per date

DECIMAL STORAGE:
  Salaries, rates, and hours are stored as TEXT and parsed with
  shopspring/decimal, preserving exact values across round-trips.

WAL MODE:
  SQLite is opened with WAL for better concurrency; a process-level
  RWMutex serializes writers on top of that.

USAGE:
  store, err := sqlite.New("./data/standby.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - state/store.go: Interface definition
  - state/memory: In-memory implementation for tests
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
	"github.com/warp/standby-engine/state"
)

// Store implements state.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

var _ state.Store = (*Store)(nil)

// New creates a SQLite store at the given path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	-- Scalar settings per pay period, keyed by first of month
	CREATE TABLE IF NOT EXISTS periods (
		month TEXT PRIMARY KEY,
		salary TEXT NOT NULL,
		profile TEXT NOT NULL,
		custom_standby TEXT NOT NULL,
		custom_ot_normal TEXT NOT NULL,
		custom_ot_holiday TEXT NOT NULL,
		hours_override TEXT,
		updated_at TEXT NOT NULL
	);

	-- At most one assignment per date (spec of the toggle cycle)
	CREATE TABLE IF NOT EXISTS shift_assignments (
		date TEXT PRIMARY KEY,
		month TEXT NOT NULL,
		variant TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_shift_assignments_month
		ON shift_assignments(month);

	-- Multiple entries per date are allowed
	CREATE TABLE IF NOT EXISTS work_logs (
		id TEXT PRIMARY KEY,
		month TEXT NOT NULL,
		date TEXT NOT NULL,
		hours TEXT NOT NULL,
		holiday_override INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_work_logs_month
		ON work_logs(month);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PERIOD LOADING
// =============================================================================

func (s *Store) LoadPeriod(ctx context.Context, month calendar.Date) (*state.PeriodState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := state.MonthKey(month)
	ps := state.NewPeriodState(key)

	row := s.db.QueryRowContext(ctx, `
		SELECT salary, profile, custom_standby, custom_ot_normal, custom_ot_holiday, hours_override
		FROM periods WHERE month = ?`, key.String())

	var salary, profile, customStandby, customOTNormal, customOTHoliday string
	var hoursOverride sql.NullString
	err := row.Scan(&salary, &profile, &customStandby, &customOTNormal, &customOTHoliday, &hoursOverride)
	switch {
	case err == sql.ErrNoRows:
		// Untouched month: defaults
	case err != nil:
		return nil, fmt.Errorf("failed to load period %s: %w", key, err)
	default:
		settings, err := parseSettings(salary, profile, customStandby, customOTNormal, customOTHoliday, hoursOverride)
		if err != nil {
			return nil, err
		}
		ps.Settings = settings
	}

	if ps.Shifts, err = s.loadShifts(ctx, key); err != nil {
		return nil, err
	}
	if ps.WorkLogs, err = s.loadWorkLogs(ctx, key); err != nil {
		return nil, err
	}
	return ps, nil
}

func parseSettings(salary, profile, customStandby, customOTNormal, customOTHoliday string, hoursOverride sql.NullString) (state.Settings, error) {
	var settings state.Settings
	var err error

	if settings.Salary, err = decimal.NewFromString(salary); err != nil {
		return settings, fmt.Errorf("corrupt salary %q: %w", salary, err)
	}
	if settings.Profile, err = standby.ParseRateProfile(profile); err != nil {
		return settings, err
	}
	if settings.CustomRates.Standby, err = decimal.NewFromString(customStandby); err != nil {
		return settings, fmt.Errorf("corrupt custom standby rate %q: %w", customStandby, err)
	}
	if settings.CustomRates.OvertimeNormal, err = decimal.NewFromString(customOTNormal); err != nil {
		return settings, fmt.Errorf("corrupt custom overtime rate %q: %w", customOTNormal, err)
	}
	if settings.CustomRates.OvertimeHoliday, err = decimal.NewFromString(customOTHoliday); err != nil {
		return settings, fmt.Errorf("corrupt custom holiday rate %q: %w", customOTHoliday, err)
	}
	if hoursOverride.Valid {
		override, err := decimal.NewFromString(hoursOverride.String)
		if err != nil {
			return settings, fmt.Errorf("corrupt hours override %q: %w", hoursOverride.String, err)
		}
		settings.MonthlyHoursOverride = &override
	}
	return settings, nil
}

func (s *Store) loadShifts(ctx context.Context, key calendar.Date) (standby.ShiftSet, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, variant FROM shift_assignments WHERE month = ?`, key.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	defer rows.Close()

	shifts := standby.ShiftSet{}
	for rows.Next() {
		var rawDate, rawVariant string
		if err := rows.Scan(&rawDate, &rawVariant); err != nil {
			return nil, err
		}
		date, err := calendar.ParseDate(rawDate)
		if err != nil {
			return nil, &standby.MalformedInputError{Field: "stored shift date", Value: rawDate, Cause: err}
		}
		variant, err := standby.ParseShiftVariant(rawVariant)
		if err != nil {
			return nil, err
		}
		shifts[date] = variant
	}
	return shifts, rows.Err()
}

func (s *Store) loadWorkLogs(ctx context.Context, key calendar.Date) ([]standby.WorkLogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, hours, holiday_override FROM work_logs WHERE month = ? ORDER BY date, id`, key.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load work logs: %w", err)
	}
	defer rows.Close()

	var logs []standby.WorkLogEntry
	for rows.Next() {
		var entry standby.WorkLogEntry
		var rawDate, rawHours string
		var override int
		if err := rows.Scan(&entry.ID, &rawDate, &rawHours, &override); err != nil {
			return nil, err
		}
		if entry.Date, err = calendar.ParseDate(rawDate); err != nil {
			return nil, &standby.MalformedInputError{Field: "stored work log date", Value: rawDate, Cause: err}
		}
		if entry.Hours, err = decimal.NewFromString(rawHours); err != nil {
			return nil, fmt.Errorf("corrupt work log hours %q: %w", rawHours, err)
		}
		entry.HolidayOverride = override != 0
		logs = append(logs, entry)
	}
	return logs, rows.Err()
}

// =============================================================================
// MUTATIONS
// =============================================================================

func (s *Store) SaveSettings(ctx context.Context, month calendar.Date, settings state.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hoursOverride any
	if settings.MonthlyHoursOverride != nil {
		hoursOverride = settings.MonthlyHoursOverride.String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO periods (month, salary, profile, custom_standby, custom_ot_normal, custom_ot_holiday, hours_override, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(month) DO UPDATE SET
			salary = excluded.salary,
			profile = excluded.profile,
			custom_standby = excluded.custom_standby,
			custom_ot_normal = excluded.custom_ot_normal,
			custom_ot_holiday = excluded.custom_ot_holiday,
			hours_override = excluded.hours_override,
			updated_at = excluded.updated_at`,
		state.MonthKey(month).String(),
		settings.Salary.String(),
		string(settings.Profile),
		settings.CustomRates.Standby.String(),
		settings.CustomRates.OvertimeNormal.String(),
		settings.CustomRates.OvertimeHoliday.String(),
		hoursOverride,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *Store) ToggleShift(ctx context.Context, month calendar.Date, date calendar.Date) (standby.ShiftVariant, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := state.MonthKey(month)

	var rawVariant string
	err := s.db.QueryRowContext(ctx,
		`SELECT variant FROM shift_assignments WHERE date = ?`, date.String()).Scan(&rawVariant)
	switch {
	case err == sql.ErrNoRows:
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO shift_assignments (date, month, variant) VALUES (?, ?, ?)`,
			date.String(), key.String(), string(standby.VariantFull))
		if err != nil {
			return "", false, fmt.Errorf("failed to assign shift: %w", err)
		}
		return standby.VariantFull, true, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to read shift: %w", err)
	}

	current, err := standby.ParseShiftVariant(rawVariant)
	if err != nil {
		return "", false, err
	}

	next, ok := current.Next()
	if !ok {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM shift_assignments WHERE date = ?`, date.String()); err != nil {
			return "", false, fmt.Errorf("failed to remove shift: %w", err)
		}
		return "", false, nil
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE shift_assignments SET variant = ? WHERE date = ?`,
		string(next), date.String()); err != nil {
		return "", false, fmt.Errorf("failed to cycle shift: %w", err)
	}
	return next, true, nil
}

func (s *Store) PutWorkLog(ctx context.Context, month calendar.Date, entry standby.WorkLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	override := 0
	if entry.HolidayOverride {
		override = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO work_logs (id, month, date, hours, holiday_override)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			hours = excluded.hours,
			holiday_override = excluded.holiday_override`,
		entry.ID,
		state.MonthKey(month).String(),
		entry.Date.String(),
		entry.Hours.String(),
		override,
	)
	if err != nil {
		return fmt.Errorf("failed to save work log: %w", err)
	}
	return nil
}

func (s *Store) DeleteWorkLog(ctx context.Context, month calendar.Date, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM work_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete work log: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return state.ErrWorkLogNotFound
	}
	return nil
}

func (s *Store) ReplaceShifts(ctx context.Context, month calendar.Date, shifts standby.ShiftSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := state.MonthKey(month)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM shift_assignments WHERE month = ?`, key.String()); err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}
	for _, assignment := range shifts.Assignments() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shift_assignments (date, month, variant) VALUES (?, ?, ?)`,
			assignment.Date.String(), key.String(), string(assignment.Variant)); err != nil {
			return fmt.Errorf("failed to import shift: %w", err)
		}
	}
	return tx.Commit()
}
