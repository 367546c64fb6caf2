package timesheet

import (
	"math"
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/geo"
	"github.com/google/uuid"
)

type Status string

const (
	StatusAbsent     Status = "ABSENT"
	StatusPresent    Status = "PRESENT"
	StatusLate       Status = "LATE"
	StatusOnBreak    Status = "ON_BREAK"
	StatusEarlyLeave Status = "EARLY_LEAVE"
	StatusOvertime   Status = "OVERTIME"
)

var StatusValues = []string{
	string(StatusAbsent),
	string(StatusPresent),
	string(StatusLate),
	string(StatusOnBreak),
	string(StatusEarlyLeave),
	string(StatusOvertime),
}

type BreakType string

const (
	BreakLunch    BreakType = "lunch"
	BreakCoffee   BreakType = "coffee"
	BreakPersonal BreakType = "personal"
	BreakOther    BreakType = "other"
)

var BreakTypeValues = []string{
	string(BreakLunch),
	string(BreakCoffee),
	string(BreakPersonal),
	string(BreakOther),
}

type BreakEntry struct {
	ID              string
	Type            BreakType
	Start           time.Time
	End             *time.Time
	DurationMinutes *int
	Location        *geo.Point
}

// Entry is the daily attendance record for one worker, keyed by
// (worker id, local calendar date). All derived fields are recomputed from
// the raw clock/break fields and never set independently.
type Entry struct {
	ID       string
	WorkerID string
	TenantID string
	Date     string // "2006-01-02", local to the worker

	Status Status

	ClockIn          *time.Time
	ClockInLocation  *geo.Point
	ClockInNote      *string
	ClockOut         *time.Time
	ClockOutLocation *geo.Point
	ClockOutNote     *string

	Breaks []BreakEntry

	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ScheduledWorkHours *float64

	// Derived
	ActualWorkHours   float64
	OvertimeHours     float64
	TotalBreakMinutes int

	// Supervisory overlay, orthogonal to the state machine.
	IsValidated  bool
	ManagerNotes *string
	ValidatedBy  *string
	ValidatedAt  *time.Time

	// Optimistic-concurrency version, bumped by the repository on write.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry creates the day's record lazily, on first clock-in.
func NewEntry(workerID, tenantID, date string) *Entry {
	return &Entry{
		ID:       uuid.NewString(),
		WorkerID: workerID,
		TenantID: tenantID,
		Date:     date,
		Status:   StatusAbsent,
	}
}

// RecordClockIn starts the day. Calling it twice is an error, not a no-op.
func (e *Entry) RecordClockIn(now time.Time, location *geo.Point, note *string) error {
	if e.ClockIn != nil {
		return ErrAlreadyClockedIn
	}

	e.ClockIn = &now
	e.ClockInLocation = location
	e.ClockInNote = note

	if e.ScheduledStart != nil && now.After(*e.ScheduledStart) {
		e.Status = StatusLate
	} else {
		e.Status = StatusPresent
	}
	return nil
}

// RecordClockOut terminates the day and recomputes all derived fields. The
// clock-out must be strictly after the clock-in; a shift crossing midnight
// stays on this entry, so an overnight clock-out is legal.
func (e *Entry) RecordClockOut(now time.Time, location *geo.Point, note *string) error {
	if e.ClockIn == nil {
		return ErrNotClockedIn
	}
	if e.ClockOut != nil {
		return ErrAlreadyClockedOut
	}
	if !now.After(*e.ClockIn) {
		return ErrClockOutNotAfterClockIn
	}

	// A break still open at clock-out ends implicitly at the clock-out
	// time, so its minutes count and it cannot linger unendable.
	if open := e.OpenBreak(); open != nil {
		open.End = &now
		minutes := int(math.Round(now.Sub(open.Start).Minutes()))
		if minutes < 0 {
			minutes = 0
		}
		open.DurationMinutes = &minutes
	}

	e.ClockOut = &now
	e.ClockOutLocation = location
	e.ClockOutNote = note
	e.recompute()
	return nil
}

// StartBreak opens a break. Only one break may be open at a time.
func (e *Entry) StartBreak(breakType BreakType, now time.Time, location *geo.Point) (BreakEntry, error) {
	if e.ClockIn == nil || e.ClockOut != nil {
		return BreakEntry{}, ErrNotClockedIn
	}
	if e.OpenBreak() != nil {
		return BreakEntry{}, ErrBreakAlreadyActive
	}

	b := BreakEntry{
		ID:       uuid.NewString(),
		Type:     breakType,
		Start:    now,
		Location: location,
	}
	e.Breaks = append(e.Breaks, b)
	e.Status = StatusOnBreak
	return b, nil
}

// EndBreak terminates the identified break and re-derives break totals.
// Status reverts to PRESENT once no break remains open; LATE/OVERTIME are
// only assigned at clock-in/clock-out.
func (e *Entry) EndBreak(breakID string, now time.Time, location *geo.Point) (BreakEntry, error) {
	var target *BreakEntry
	for i := range e.Breaks {
		if e.Breaks[i].ID == breakID {
			target = &e.Breaks[i]
			break
		}
	}
	if target == nil {
		return BreakEntry{}, ErrBreakNotFound
	}
	if target.End != nil {
		return BreakEntry{}, ErrBreakAlreadyEnded
	}
	if !now.After(target.Start) {
		return BreakEntry{}, ErrBreakEndNotAfterStart
	}

	target.End = &now
	if location != nil {
		target.Location = location
	}
	minutes := int(math.Round(now.Sub(target.Start).Minutes()))
	target.DurationMinutes = &minutes

	e.TotalBreakMinutes = e.sumBreakMinutes()
	if e.ClockOut != nil {
		// Hours were already derived at clock-out; fold the new break
		// minutes back in.
		e.recompute()
	} else if e.OpenBreak() == nil {
		e.Status = StatusPresent
	}
	return *target, nil
}

// OpenBreak returns the unterminated break, if any.
func (e *Entry) OpenBreak() *BreakEntry {
	for i := range e.Breaks {
		if e.Breaks[i].End == nil {
			return &e.Breaks[i]
		}
	}
	return nil
}

// Correction is a manager edit of raw fields. Derived fields are
// re-computed in the same call, so they can never go stale.
type Correction struct {
	ClockIn            *time.Time
	ClockOut           *time.Time
	ScheduledStart     *time.Time
	ScheduledEnd       *time.Time
	ScheduledWorkHours *float64
	ManagerNotes       *string
}

// ApplyCorrection sets the supplied raw fields, validates time ordering,
// and atomically re-derives hours and status.
func (e *Entry) ApplyCorrection(c Correction) error {
	clockIn := e.ClockIn
	if c.ClockIn != nil {
		clockIn = c.ClockIn
	}
	clockOut := e.ClockOut
	if c.ClockOut != nil {
		clockOut = c.ClockOut
	}
	if clockIn != nil && clockOut != nil && !clockOut.After(*clockIn) {
		return ErrClockOutNotAfterClockIn
	}

	e.ClockIn = clockIn
	e.ClockOut = clockOut
	if c.ScheduledStart != nil {
		e.ScheduledStart = c.ScheduledStart
	}
	if c.ScheduledEnd != nil {
		e.ScheduledEnd = c.ScheduledEnd
	}
	if c.ScheduledWorkHours != nil {
		e.ScheduledWorkHours = c.ScheduledWorkHours
	}
	if c.ManagerNotes != nil {
		e.ManagerNotes = c.ManagerNotes
	}

	e.recompute()
	return nil
}

// Validate records supervisory sign-off. It does not touch the state
// machine.
func (e *Entry) Validate(validatedBy string, notes *string, at time.Time) {
	e.IsValidated = true
	e.ValidatedBy = &validatedBy
	e.ValidatedAt = &at
	if notes != nil {
		e.ManagerNotes = notes
	}
}

// recompute re-derives break totals, work hours, overtime and final status
// from the raw fields.
func (e *Entry) recompute() {
	e.TotalBreakMinutes = e.sumBreakMinutes()

	if e.ClockIn == nil {
		e.Status = StatusAbsent
		e.ActualWorkHours = 0
		e.OvertimeHours = 0
		return
	}

	if e.ClockOut == nil {
		e.ActualWorkHours = 0
		e.OvertimeHours = 0
		if e.OpenBreak() != nil {
			e.Status = StatusOnBreak
		} else if e.ScheduledStart != nil && e.ClockIn.After(*e.ScheduledStart) {
			e.Status = StatusLate
		} else {
			e.Status = StatusPresent
		}
		return
	}

	hours := e.ClockOut.Sub(*e.ClockIn).Hours() - float64(e.TotalBreakMinutes)/60
	if hours < 0 {
		hours = 0
	}
	e.ActualWorkHours = hours

	e.OvertimeHours = 0
	if e.ScheduledWorkHours != nil {
		overtime := e.ActualWorkHours - *e.ScheduledWorkHours
		if overtime > 0 {
			e.OvertimeHours = overtime
		}
	}

	// Final status priority: late, then early-leave, then overtime.
	// Last match wins.
	status := StatusPresent
	if e.ScheduledStart != nil && e.ClockIn.After(*e.ScheduledStart) {
		status = StatusLate
	}
	if e.ScheduledEnd != nil && e.ClockOut.Before(*e.ScheduledEnd) {
		status = StatusEarlyLeave
	}
	if e.OvertimeHours > 0 {
		status = StatusOvertime
	}
	e.Status = status
}

func (e *Entry) sumBreakMinutes() int {
	total := 0
	for _, b := range e.Breaks {
		if b.DurationMinutes != nil {
			total += *b.DurationMinutes
		}
	}
	return total
}
