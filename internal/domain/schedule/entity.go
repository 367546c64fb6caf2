package schedule

import (
	"fmt"
	"time"
)

// WorkSchedule is a read-only collaborator: per-weekday work windows plus
// grace periods, resolved by the caller and passed into the attendance core.
type WorkSchedule struct {
	ID                string
	TenantID          string
	Name              string
	GraceLateMinutes  int
	GraceEarlyMinutes int
	Days              []WorkDay
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type WorkDay struct {
	DayOfWeek            int // 1=Monday, ..., 7=Sunday
	IsWorkDay            bool
	StartTime            string // "15:04", local wall clock
	EndTime              string
	BreakDurationMinutes int
}

// DayFor returns the work-day row matching the weekday of date, if any.
func (s *WorkSchedule) DayFor(date time.Time) (WorkDay, bool) {
	dow := int(date.Weekday())
	if dow == 0 {
		dow = 7 // time.Sunday is 0, rows use ISO numbering
	}
	for _, d := range s.Days {
		if d.DayOfWeek == dow {
			return d, true
		}
	}
	return WorkDay{}, false
}

// Window resolves the scheduled start/end timestamps and scheduled work
// hours for date in loc. ok is false on non-work days or when no row covers
// the weekday.
func (s *WorkSchedule) Window(date time.Time, loc *time.Location) (start, end time.Time, workHours float64, ok bool) {
	day, found := s.DayFor(date.In(loc))
	if !found || !day.IsWorkDay {
		return time.Time{}, time.Time{}, 0, false
	}

	start, err := day.at(day.StartTime, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, 0, false
	}
	end, err = day.at(day.EndTime, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, 0, false
	}
	// An end at or before the start means the shift crosses midnight.
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	workHours = end.Sub(start).Hours() - float64(day.BreakDurationMinutes)/60
	if workHours < 0 {
		workHours = 0
	}
	return start, end, workHours, true
}

func (d WorkDay) at(clock string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule time %q: %w", clock, err)
	}
	local := date.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
