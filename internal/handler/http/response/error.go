package response

import (
	"errors"
	"net/http"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Timesheet domain errors
	switch {
	case errors.Is(err, timesheet.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in for this day")
	case errors.Is(err, timesheet.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out for this day")
	case errors.Is(err, timesheet.ErrNotClockedIn):
		Conflict(w, "No open clock-in found")
	case errors.Is(err, timesheet.ErrClockOutNotAfterClockIn):
		BadRequest(w, "Clock-out must be after clock-in", nil)
	case errors.Is(err, timesheet.ErrBreakAlreadyActive):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, timesheet.ErrBreakNotFound):
		NotFound(w, "Break not found")
	case errors.Is(err, timesheet.ErrBreakAlreadyEnded):
		Conflict(w, "Break already ended")
	case errors.Is(err, timesheet.ErrBreakEndNotAfterStart):
		BadRequest(w, "Break end must be after break start", nil)
	case errors.Is(err, timesheet.ErrLocationRequired):
		BadRequest(w, "Location is required for this worker", nil)
	case errors.Is(err, timesheet.ErrLocationOutsideAllowedArea):
		Forbidden(w, "Location is outside the allowed area")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Timesheet entry not found")
	case errors.Is(err, timesheet.ErrConcurrentUpdate):
		Conflict(w, "Entry was modified concurrently, retry the request")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerInactive):
		Forbidden(w, "Worker is inactive")
	case errors.Is(err, worker.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, worker.ErrInvalidLeaveCategory):
		BadRequest(w, "Unknown leave category", nil)
	case errors.Is(err, worker.ErrNegativeBalance):
		BadRequest(w, "Leave balance cannot be negative", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
