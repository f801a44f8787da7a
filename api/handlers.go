/*
handlers.go - HTTP handlers for the standby compensation service

PURPOSE:
  Exposes the pay-period state and the compensation engine over REST.
  Handlers parse and validate input, delegate to the state store and the
  standby core, and serialize results. The core itself stays pure; every
  request recomputes from the stored inputs.

ENDPOINTS:
  Periods:
    GET  /api/periods/{month}               Full period state
    PUT  /api/periods/{month}/settings      Salary, profile, rates, override
    GET  /api/periods/{month}/compensation  Computed result

  Shifts:
    GET  /api/periods/{month}/shifts        List assignments
    POST /api/periods/{month}/shifts/toggle Cycle a date's variant
    POST /api/periods/{month}/import-legacy Normalize legacy date arrays

  Work logs:
    POST   /api/periods/{month}/worklogs        Create entry
    PUT    /api/periods/{month}/worklogs/{id}   Update entry
    DELETE /api/periods/{month}/worklogs/{id}   Delete entry

  Holidays:
    GET  /api/holidays/{year}               The 13 resolved dates

ERROR HANDLING:
  - 400: validation failures, malformed dates/variants/profiles
  - 404: unknown work log ID
  - 500: store failures

SEE ALSO:
  - dto.go: Request/response shapes
  - server.go: Router and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/standby-engine/calendar"
	"github.com/warp/standby-engine/standby"
	"github.com/warp/standby-engine/state"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds the dependencies of the HTTP layer.
type Handler struct {
	Store    state.Store
	validate *validator.Validate
}

// NewHandler creates a handler backed by the given store.
func NewHandler(store state.Store) *Handler {
	return &Handler{
		Store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// parseMonth resolves the {month} URL parameter ("2006-01") to the first
// day of that month.
func parseMonth(r *http.Request) (calendar.Date, error) {
	raw := chi.URLParam(r, "month")
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return calendar.Date{}, &standby.MalformedInputError{Field: "month", Value: raw, Cause: err}
	}
	return calendar.NewDate(t.Year(), t.Month(), 1), nil
}

// =============================================================================
// PERIOD HANDLERS
// =============================================================================

// GetPeriod returns the full stored state of a month.
func (h *Handler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	ps, err := h.Store.LoadPeriod(r.Context(), month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load period", err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodDTO(ps))
}

// SaveSettings replaces the scalar settings of a month.
func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	var req SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	profile, err := standby.ParseRateProfile(req.Profile)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown rate profile", err)
		return
	}

	settings := state.Settings{
		Salary:  decimal.NewFromFloat(req.Salary),
		Profile: profile,
	}
	if req.CustomRates != nil {
		settings.CustomRates = standby.RateTable{
			Standby:         decimal.NewFromFloat(req.CustomRates.Standby),
			OvertimeNormal:  decimal.NewFromFloat(req.CustomRates.OvertimeNormal),
			OvertimeHoliday: decimal.NewFromFloat(req.CustomRates.OvertimeHoliday),
		}
	}
	if req.MonthlyHoursOverride != nil {
		override := decimal.NewFromFloat(*req.MonthlyHoursOverride)
		settings.MonthlyHoursOverride = &override
	}

	if err := h.Store.SaveSettings(r.Context(), month, settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

// GetCompensation recomputes and returns the result for a month.
func (h *Handler) GetCompensation(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	ps, err := h.Store.LoadPeriod(r.Context(), month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load period", err)
		return
	}

	result, err := standby.Compute(ps.Input())
	if err != nil {
		if standby.IsClientError(err) {
			writeError(w, http.StatusBadRequest, "Malformed period state", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to compute compensation", err)
		return
	}
	writeJSON(w, http.StatusOK, toCompensationDTO(result))
}

// =============================================================================
// SHIFT HANDLERS
// =============================================================================

// ListShifts returns the month's assignments ordered by date.
func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	ps, err := h.Store.LoadPeriod(r.Context(), month)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load period", err)
		return
	}

	dtos := make([]ShiftDTO, 0, len(ps.Shifts))
	for _, a := range ps.Shifts.Assignments() {
		dtos = append(dtos, ShiftDTO{Date: a.Date.String(), Variant: string(a.Variant)})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// ToggleShift cycles a date: none -> full -> start -> end -> split -> none.
func (h *Handler) ToggleShift(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	var req ToggleShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	variant, assigned, err := h.Store.ToggleShift(r.Context(), month, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to toggle shift", err)
		return
	}

	writeJSON(w, http.StatusOK, ToggleShiftResponse{
		Date:    date.String(),
		Variant: string(variant),
		Removed: !assigned,
	})
}

// ImportLegacyShifts normalizes the pre-variant persisted shape and
// replaces the month's assignment set with the result.
func (h *Handler) ImportLegacyShifts(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	var req ImportLegacyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	shifts, err := state.NormalizeLegacyShifts(req.Dates)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed legacy state", err)
		return
	}

	if err := h.Store.ReplaceShifts(r.Context(), month, shifts); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to import shifts", err)
		return
	}

	dtos := make([]ShiftDTO, 0, len(shifts))
	for _, a := range shifts.Assignments() {
		dtos = append(dtos, ShiftDTO{Date: a.Date.String(), Variant: string(a.Variant)})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// WORK LOG HANDLERS
// =============================================================================

// CreateWorkLog adds a new entry with a minted ID.
func (h *Handler) CreateWorkLog(w http.ResponseWriter, r *http.Request) {
	h.saveWorkLog(w, r, uuid.NewString(), http.StatusCreated)
}

// UpdateWorkLog replaces an entry by ID.
func (h *Handler) UpdateWorkLog(w http.ResponseWriter, r *http.Request) {
	h.saveWorkLog(w, r, chi.URLParam(r, "id"), http.StatusOK)
}

func (h *Handler) saveWorkLog(w http.ResponseWriter, r *http.Request, id string, status int) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	var req WorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	date, err := calendar.ParseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date (use YYYY-MM-DD)", err)
		return
	}

	entry := standby.WorkLogEntry{
		ID:              id,
		Date:            date,
		Hours:           decimal.NewFromFloat(req.Hours),
		HolidayOverride: req.HolidayOverride,
	}
	if err := h.Store.PutWorkLog(r.Context(), month, entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save work log", err)
		return
	}
	writeJSON(w, status, toWorkLogDTO(entry))
}

// DeleteWorkLog removes an entry by ID.
func (h *Handler) DeleteWorkLog(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonth(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid month (use YYYY-MM)", err)
		return
	}

	if err := h.Store.DeleteWorkLog(r.Context(), month, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, state.ErrWorkLogNotFound) {
			writeError(w, http.StatusNotFound, "Work log entry not found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete work log", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns the 13 resolved holiday dates of a year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1583 {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}

	dates := calendar.HolidaysInYear(year)
	dto := HolidaysDTO{Year: year, Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		dto.Dates = append(dto.Dates, d.String())
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Code = errorCode(err)
	}
	writeJSON(w, status, resp)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, standby.ErrUnknownShiftVariant):
		return "unknown_shift_variant"
	case errors.Is(err, standby.ErrUnknownRateProfile):
		return "unknown_rate_profile"
	case errors.Is(err, standby.ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, state.ErrWorkLogNotFound):
		return "not_found"
	default:
		return ""
	}
}
