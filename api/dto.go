/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON shapes for the HTTP surface, decoupled from the core types. Money
  and hours cross the wire as float64; exact decimal arithmetic lives in
  the core and conversion happens only at this edge.

VALIDATION:
  Request types carry go-playground/validator struct tags. Validation
  runs in the handlers before any core or store call: non-negative
  salary and hours are a caller-side concern per the core's contract.

SEE ALSO:
  - handlers.go: Uses these types
  - standby/types.go: The core shapes these map onto
*/
package api

import (
	"github.com/warp/standby-engine/standby"
	"github.com/warp/standby-engine/state"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SettingsRequest replaces a period's scalar settings.
type SettingsRequest struct {
	Salary               float64         `json:"salary" validate:"gte=0"`
	Profile              string          `json:"profile" validate:"required"`
	CustomRates          *CustomRatesDTO `json:"custom_rates,omitempty"`
	MonthlyHoursOverride *float64        `json:"monthly_hours_override,omitempty"`
}

// CustomRatesDTO carries user-editable multipliers, used only when the
// profile is "custom".
type CustomRatesDTO struct {
	Standby         float64 `json:"standby" validate:"gte=0"`
	OvertimeNormal  float64 `json:"overtime_normal" validate:"gte=0"`
	OvertimeHoliday float64 `json:"overtime_holiday" validate:"gte=0"`
}

// ToggleShiftRequest cycles one calendar day through the variant cycle.
type ToggleShiftRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// WorkLogRequest creates or updates a work log entry.
type WorkLogRequest struct {
	Date            string  `json:"date" validate:"required,datetime=2006-01-02"`
	Hours           float64 `json:"hours" validate:"gte=0"`
	HolidayOverride bool    `json:"holiday_override"`
}

// ImportLegacyRequest carries the pre-variant persisted shape: bare date
// strings, each an implicit Full assignment.
type ImportLegacyRequest struct {
	Dates []string `json:"dates" validate:"required"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ShiftDTO represents one assignment in responses.
type ShiftDTO struct {
	Date    string `json:"date"`
	Variant string `json:"variant"`
}

// ToggleShiftResponse reports the toggle outcome.
type ToggleShiftResponse struct {
	Date    string `json:"date"`
	Variant string `json:"variant,omitempty"`
	Removed bool   `json:"removed"`
}

// WorkLogDTO represents one work log entry in responses.
type WorkLogDTO struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	Hours           float64 `json:"hours"`
	HolidayOverride bool    `json:"holiday_override"`
}

// SettingsDTO mirrors SettingsRequest in responses.
type SettingsDTO struct {
	Salary               float64         `json:"salary"`
	Profile              string          `json:"profile"`
	CustomRates          *CustomRatesDTO `json:"custom_rates,omitempty"`
	MonthlyHoursOverride *float64        `json:"monthly_hours_override,omitempty"`
}

// PeriodDTO is the full period state.
type PeriodDTO struct {
	Month    string       `json:"month"`
	Settings SettingsDTO  `json:"settings"`
	Shifts   []ShiftDTO   `json:"shifts"`
	WorkLogs []WorkLogDTO `json:"work_logs"`
}

// CompensationDTO is the computed result for a period.
type CompensationDTO struct {
	PayableStandbyHours float64 `json:"payable_standby_hours"`
	WorkNormalHours     float64 `json:"work_normal_hours"`
	WorkHolidayHours    float64 `json:"work_holiday_hours"`
	HourlyWage          float64 `json:"hourly_wage"`
	StandbyFee          float64 `json:"standby_fee"`
	OvertimeNormalPay   float64 `json:"overtime_normal_pay"`
	OvertimeHolidayPay  float64 `json:"overtime_holiday_pay"`
	TotalBonus          float64 `json:"total_bonus"`
}

// HolidaysDTO lists the resolved holiday dates of a year.
type HolidaysDTO struct {
	Year  int      `json:"year"`
	Dates []string `json:"dates"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPeriodDTO(ps *state.PeriodState) PeriodDTO {
	dto := PeriodDTO{
		Month:    ps.Month.String(),
		Settings: toSettingsDTO(ps.Settings),
		Shifts:   make([]ShiftDTO, 0, len(ps.Shifts)),
		WorkLogs: make([]WorkLogDTO, 0, len(ps.WorkLogs)),
	}
	for _, a := range ps.Shifts.Assignments() {
		dto.Shifts = append(dto.Shifts, ShiftDTO{Date: a.Date.String(), Variant: string(a.Variant)})
	}
	for _, entry := range ps.WorkLogs {
		dto.WorkLogs = append(dto.WorkLogs, toWorkLogDTO(entry))
	}
	return dto
}

func toSettingsDTO(s state.Settings) SettingsDTO {
	salary, _ := s.Salary.Float64()
	dto := SettingsDTO{
		Salary:  salary,
		Profile: string(s.Profile),
	}
	if s.Profile == standby.ProfileCustom {
		standbyRate, _ := s.CustomRates.Standby.Float64()
		otNormal, _ := s.CustomRates.OvertimeNormal.Float64()
		otHoliday, _ := s.CustomRates.OvertimeHoliday.Float64()
		dto.CustomRates = &CustomRatesDTO{
			Standby:         standbyRate,
			OvertimeNormal:  otNormal,
			OvertimeHoliday: otHoliday,
		}
	}
	if s.MonthlyHoursOverride != nil {
		override, _ := s.MonthlyHoursOverride.Float64()
		dto.MonthlyHoursOverride = &override
	}
	return dto
}

func toWorkLogDTO(entry standby.WorkLogEntry) WorkLogDTO {
	hours, _ := entry.Hours.Float64()
	return WorkLogDTO{
		ID:              entry.ID,
		Date:            entry.Date.String(),
		Hours:           hours,
		HolidayOverride: entry.HolidayOverride,
	}
}

func toCompensationDTO(result standby.CompensationResult) CompensationDTO {
	f := func(d interface{ Float64() (float64, bool) }) float64 {
		v, _ := d.Float64()
		return v
	}
	return CompensationDTO{
		PayableStandbyHours: f(result.PayableStandbyHours),
		WorkNormalHours:     f(result.WorkNormalHours),
		WorkHolidayHours:    f(result.WorkHolidayHours),
		HourlyWage:          f(result.HourlyWage),
		StandbyFee:          f(result.StandbyFee),
		OvertimeNormalPay:   f(result.OvertimeNormalPay),
		OvertimeHolidayPay:  f(result.OvertimeHolidayPay),
		TotalBonus:          f(result.TotalBonus),
	}
}
