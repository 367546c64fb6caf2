package timesheet

import (
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/geo"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// TIMESHEET DTOs
// ========================================

type ClockInRequest struct {
	WorkerID string     `json:"worker_id"`
	TenantID string     `json:"tenant_id"`
	Location *geo.Point `json:"location,omitempty"`
	Note     *string    `json:"note,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	return validateClockRequest(r.WorkerID, r.TenantID, r.Location)
}

type ClockOutRequest struct {
	WorkerID string     `json:"worker_id"`
	TenantID string     `json:"tenant_id"`
	Location *geo.Point `json:"location,omitempty"`
	Note     *string    `json:"note,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	return validateClockRequest(r.WorkerID, r.TenantID, r.Location)
}

func validateClockRequest(workerID, tenantID string, location *geo.Point) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(workerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(tenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	errs = append(errs, validateLocation(location)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateLocation(location *geo.Point) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if location == nil {
		return nil
	}

	if !validator.IsValidLatitude(location.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(location.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "location.longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	return errs
}

type StartBreakRequest struct {
	WorkerID string     `json:"worker_id"`
	TenantID string     `json:"tenant_id"`
	Type     string     `json:"type"`
	Location *geo.Point `json:"location,omitempty"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if !validator.IsInSlice(r.Type, BreakTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: lunch, coffee, personal, other",
		})
	}

	errs = append(errs, validateLocation(r.Location)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EndBreakRequest struct {
	WorkerID string     `json:"worker_id"`
	TenantID string     `json:"tenant_id"`
	BreakID  string     `json:"break_id"`
	Location *geo.Point `json:"location,omitempty"`
}

func (r *EndBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if validator.IsEmpty(r.BreakID) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_id",
			Message: "break_id is required",
		})
	}

	errs = append(errs, validateLocation(r.Location)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CorrectionRequest struct {
	WorkerID string `json:"worker_id"`
	TenantID string `json:"tenant_id"`
	Date     string `json:"date"`

	ClockIn            *time.Time `json:"clock_in,omitempty"`
	ClockOut           *time.Time `json:"clock_out,omitempty"`
	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ScheduledWorkHours *float64   `json:"scheduled_work_hours,omitempty"`
	ManagerNotes       *string    `json:"manager_notes,omitempty"`
}

func (r *CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ScheduledWorkHours != nil && *r.ScheduledWorkHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "scheduled_work_hours",
			Message: "scheduled_work_hours must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateEntryRequest struct {
	WorkerID    string  `json:"worker_id"`
	TenantID    string  `json:"tenant_id"`
	Date        string  `json:"date"`
	ValidatedBy string  `json:"validated_by"`
	Notes       *string `json:"notes,omitempty"`
}

func (r *ValidateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ValidatedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "validated_by",
			Message: "validated_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type BreakResponse struct {
	ID              string     `json:"id"`
	Type            string     `json:"type"`
	Start           time.Time  `json:"start"`
	End             *time.Time `json:"end,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Location        *geo.Point `json:"location,omitempty"`
}

type EntryResponse struct {
	ID       string `json:"id"`
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`

	ClockIn          *time.Time `json:"clock_in,omitempty"`
	ClockInLocation  *geo.Point `json:"clock_in_location,omitempty"`
	ClockOut         *time.Time `json:"clock_out,omitempty"`
	ClockOutLocation *geo.Point `json:"clock_out_location,omitempty"`

	Breaks []BreakResponse `json:"breaks"`

	ScheduledStart     *time.Time `json:"scheduled_start,omitempty"`
	ScheduledEnd       *time.Time `json:"scheduled_end,omitempty"`
	ScheduledWorkHours *float64   `json:"scheduled_work_hours,omitempty"`

	ActualWorkHours   float64 `json:"actual_work_hours"`
	OvertimeHours     float64 `json:"overtime_hours"`
	TotalBreakMinutes int     `json:"total_break_minutes"`

	IsValidated  bool       `json:"is_validated"`
	ManagerNotes *string    `json:"manager_notes,omitempty"`
	ValidatedBy  *string    `json:"validated_by,omitempty"`
	ValidatedAt  *time.Time `json:"validated_at,omitempty"`
}

func NewEntryResponse(e *Entry) EntryResponse {
	breaks := make([]BreakResponse, 0, len(e.Breaks))
	for _, b := range e.Breaks {
		breaks = append(breaks, BreakResponse{
			ID:              b.ID,
			Type:            string(b.Type),
			Start:           b.Start,
			End:             b.End,
			DurationMinutes: b.DurationMinutes,
			Location:        b.Location,
		})
	}

	return EntryResponse{
		ID:                 e.ID,
		WorkerID:           e.WorkerID,
		Date:               e.Date,
		Status:             string(e.Status),
		ClockIn:            e.ClockIn,
		ClockInLocation:    e.ClockInLocation,
		ClockOut:           e.ClockOut,
		ClockOutLocation:   e.ClockOutLocation,
		Breaks:             breaks,
		ScheduledStart:     e.ScheduledStart,
		ScheduledEnd:       e.ScheduledEnd,
		ScheduledWorkHours: e.ScheduledWorkHours,
		ActualWorkHours:    e.ActualWorkHours,
		OvertimeHours:      e.OvertimeHours,
		TotalBreakMinutes:  e.TotalBreakMinutes,
		IsValidated:        e.IsValidated,
		ManagerNotes:       e.ManagerNotes,
		ValidatedBy:        e.ValidatedBy,
		ValidatedAt:        e.ValidatedAt,
	}
}
