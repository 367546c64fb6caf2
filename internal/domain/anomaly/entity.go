package anomaly

import "time"

// Finding is a named, rule-triggered flag over a timesheet entry. Multiple
// findings may co-occur on one entry.
type Finding string

const (
	FindingMissedClockIn         Finding = "missed_clock_in"
	FindingMissedClockOut        Finding = "missed_clock_out"
	FindingExcessiveOvertime     Finding = "excessive_overtime"
	FindingExcessiveBreakTime    Finding = "excessive_break_time"
	FindingUnusualHours          Finding = "unusual_hours"
	FindingInsufficientWorkHours Finding = "insufficient_work_hours"

	// Schedule-conformance findings, only produced when a schedule is
	// supplied.
	FindingLateArrival    Finding = "late_arrival"
	FindingEarlyDeparture Finding = "early_departure"
	FindingExcessiveBreak Finding = "excessive_break"
)

// Variance is the signed difference between actual and scheduled time.
// Each component is zero when the corresponding scheduled value is absent.
type Variance struct {
	StartVarianceMinutes  int     `json:"start_variance_minutes"`
	EndVarianceMinutes    int     `json:"end_variance_minutes"`
	DurationVarianceHours float64 `json:"duration_variance_hours"`
}

// Report bundles the read-only analysis of one entry.
type Report struct {
	WorkerID   string    `json:"worker_id"`
	Date       string    `json:"date"`
	Findings   []Finding `json:"findings"`
	Variance   Variance  `json:"variance"`
	Efficiency float64   `json:"efficiency"`
}

// Default thresholds. The 12h missed clock-out default is the authoritative
// one; a legacy batch path used 24h, so the value stays configurable until
// stakeholders settle the discrepancy.
const (
	DefaultMissedClockOutAfter    = 12 * time.Hour
	DefaultExcessiveOvertimeHours = 4.0
	// Applies to the day's total break minutes. A per-break variant
	// existed historically; total was kept so a long break cannot dodge
	// the rule by being split.
	DefaultExcessiveBreakMinutes = 120
	DefaultUnusualStartBefore    = 5  // local hour
	DefaultUnusualStartAfter     = 22 // local hour
	DefaultMinimumWorkHours      = 2.0
	// Conformance slack on top of the scheduled break duration.
	DefaultBreakGraceMinutes = 15
	// Efficiency is capped, and defined as 1.0 when no schedule exists.
	MaxEfficiency = 2.0
)

// Config carries the detector thresholds.
type Config struct {
	MissedClockOutAfter    time.Duration
	ExcessiveOvertimeHours float64
	ExcessiveBreakMinutes  int
	UnusualStartBefore     int
	UnusualStartAfter      int
	MinimumWorkHours       float64
	BreakGraceMinutes      int
}

func DefaultConfig() Config {
	return Config{
		MissedClockOutAfter:    DefaultMissedClockOutAfter,
		ExcessiveOvertimeHours: DefaultExcessiveOvertimeHours,
		ExcessiveBreakMinutes:  DefaultExcessiveBreakMinutes,
		UnusualStartBefore:     DefaultUnusualStartBefore,
		UnusualStartAfter:      DefaultUnusualStartAfter,
		MinimumWorkHours:       DefaultMinimumWorkHours,
		BreakGraceMinutes:      DefaultBreakGraceMinutes,
	}
}
