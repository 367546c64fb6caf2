package worker

import (
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/geo"
)

type LeaveCategory string

const (
	LeaveVacation     LeaveCategory = "vacation"
	LeaveSick         LeaveCategory = "sick"
	LeavePersonal     LeaveCategory = "personal"
	LeaveMaternity    LeaveCategory = "maternity"
	LeavePaternity    LeaveCategory = "paternity"
	LeaveBereavement  LeaveCategory = "bereavement"
	LeaveUnpaid       LeaveCategory = "unpaid"
	LeaveCompensatory LeaveCategory = "compensatory"
	LeaveStudy        LeaveCategory = "study"
)

var LeaveCategoryValues = []string{
	string(LeaveVacation),
	string(LeaveSick),
	string(LeavePersonal),
	string(LeaveMaternity),
	string(LeavePaternity),
	string(LeaveBereavement),
	string(LeaveUnpaid),
	string(LeaveCompensatory),
	string(LeaveStudy),
}

// DefaultLeaveBalances returns the system-wide default balance table, in
// days. Fractional days are allowed everywhere.
func DefaultLeaveBalances() map[LeaveCategory]float64 {
	return map[LeaveCategory]float64{
		LeaveVacation:     20,
		LeaveSick:         10,
		LeavePersonal:     3,
		LeaveMaternity:    90,
		LeavePaternity:    10,
		LeaveBereavement:  3,
		LeaveUnpaid:       0,
		LeaveCompensatory: 0,
		LeaveStudy:        5,
	}
}

// GeofenceSettings restricts where a worker may clock in/out.
type GeofenceSettings struct {
	Required     bool
	RadiusMeters float64 // 1-1000
	AllowedZones []geo.Point
}

type Worker struct {
	ID            string
	TenantID      string
	Department    *string
	ScheduleID    *string
	Timezone      string // IANA name, e.g. "Europe/Paris"; empty means UTC
	LeaveBalances map[LeaveCategory]float64
	Geofence      *GeofenceSettings
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Location returns the worker's timezone, falling back to UTC when unset or
// unknown.
func (w *Worker) Location() *time.Location {
	if w.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(w.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LeaveBalance returns the remaining quantity for a category. An absent
// category is a zero balance, not an error.
func (w *Worker) LeaveBalance(category LeaveCategory) float64 {
	if w.LeaveBalances == nil {
		return 0
	}
	return w.LeaveBalances[category]
}

// AdjustLeaveBalance applies a signed delta to one category. A debit that
// would take the balance below zero fails with ErrInsufficientBalance and
// leaves the balance unchanged.
func (w *Worker) AdjustLeaveBalance(category LeaveCategory, delta float64) error {
	if !isKnownCategory(category) {
		return ErrInvalidLeaveCategory
	}

	current := w.LeaveBalance(category)
	next := current + delta
	if next < 0 {
		return ErrInsufficientBalance
	}

	if w.LeaveBalances == nil {
		w.LeaveBalances = make(map[LeaveCategory]float64)
	}
	w.LeaveBalances[category] = next
	return nil
}

// ResetLeaveBalances replaces the full balance table. Categories missing
// from newBalances fall back to the system default; negative values are
// rejected wholesale.
func (w *Worker) ResetLeaveBalances(newBalances map[LeaveCategory]float64) error {
	for category, balance := range newBalances {
		if !isKnownCategory(category) {
			return ErrInvalidLeaveCategory
		}
		if balance < 0 {
			return ErrNegativeBalance
		}
	}

	balances := DefaultLeaveBalances()
	for category, balance := range newBalances {
		balances[category] = balance
	}
	w.LeaveBalances = balances
	return nil
}

func isKnownCategory(category LeaveCategory) bool {
	for _, v := range LeaveCategoryValues {
		if v == string(category) {
			return true
		}
	}
	return false
}
