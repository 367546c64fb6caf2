package timesheet

import "errors"

// Timesheet domain errors
var (
	// Clock event errors
	ErrAlreadyClockedIn        = errors.New("already clocked in today")
	ErrAlreadyClockedOut       = errors.New("already clocked out today")
	ErrNotClockedIn            = errors.New("not clocked in yet")
	ErrClockOutNotAfterClockIn = errors.New("clock-out must be after clock-in")

	// Break errors
	ErrBreakAlreadyActive    = errors.New("another break is still open")
	ErrBreakNotFound         = errors.New("break not found")
	ErrBreakAlreadyEnded     = errors.New("break has already ended")
	ErrBreakEndNotAfterStart = errors.New("break end must be after its start")

	// Geofence gate errors. Distinct because they drive different
	// user-facing remediation.
	ErrLocationRequired           = errors.New("a location is required to clock in or out")
	ErrLocationOutsideAllowedArea = errors.New("location is outside the allowed area")

	// General errors
	ErrEntryNotFound    = errors.New("timesheet entry not found")
	ErrConcurrentUpdate = errors.New("timesheet entry was modified concurrently")
)
