package anomaly

import (
	"math"
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/anomaly"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
)

// Detector runs rule-based, read-only analysis over timesheet entries. It
// never returns an error: partial-day data simply yields fewer findings.
// Safe for concurrent use.
type Detector struct {
	cfg anomaly.Config
	now func() time.Time
}

func NewDetector(cfg anomaly.Config) *Detector {
	return &Detector{cfg: cfg, now: time.Now}
}

// Analyze bundles findings, variance and efficiency for one entry. sched
// may be nil; loc resolves the worker's local wall clock and may be nil for
// UTC.
func (d *Detector) Analyze(e *timesheet.Entry, sched *schedule.WorkSchedule, loc *time.Location) anomaly.Report {
	return anomaly.Report{
		WorkerID:   e.WorkerID,
		Date:       e.Date,
		Findings:   d.Detect(e, sched, loc),
		Variance:   d.Variance(e),
		Efficiency: d.Efficiency(e),
	}
}

// Detect returns every finding that applies to the entry. Conformance
// findings require a schedule.
func (d *Detector) Detect(e *timesheet.Entry, sched *schedule.WorkSchedule, loc *time.Location) []anomaly.Finding {
	if loc == nil {
		loc = time.UTC
	}
	findings := make([]anomaly.Finding, 0)

	if e.ClockIn == nil && e.Status != timesheet.StatusAbsent {
		findings = append(findings, anomaly.FindingMissedClockIn)
	}

	if e.ClockIn != nil && e.ClockOut == nil &&
		d.now().Sub(*e.ClockIn) > d.cfg.MissedClockOutAfter {
		findings = append(findings, anomaly.FindingMissedClockOut)
	}

	if e.OvertimeHours > d.cfg.ExcessiveOvertimeHours {
		findings = append(findings, anomaly.FindingExcessiveOvertime)
	}

	if e.TotalBreakMinutes > d.cfg.ExcessiveBreakMinutes {
		findings = append(findings, anomaly.FindingExcessiveBreakTime)
	}

	if e.ClockIn != nil {
		hour := e.ClockIn.In(loc).Hour()
		if hour < d.cfg.UnusualStartBefore || hour > d.cfg.UnusualStartAfter {
			findings = append(findings, anomaly.FindingUnusualHours)
		}
	}

	if e.Status == timesheet.StatusPresent && e.ClockOut != nil &&
		e.ActualWorkHours < d.cfg.MinimumWorkHours {
		findings = append(findings, anomaly.FindingInsufficientWorkHours)
	}

	if sched != nil {
		findings = append(findings, d.conformance(e, sched, loc)...)
	}

	return findings
}

// conformance checks the entry against its schedule's grace periods.
func (d *Detector) conformance(e *timesheet.Entry, sched *schedule.WorkSchedule, loc *time.Location) []anomaly.Finding {
	findings := make([]anomaly.Finding, 0)
	v := d.Variance(e)

	if e.ClockIn != nil && e.ScheduledStart != nil &&
		v.StartVarianceMinutes > sched.GraceLateMinutes {
		findings = append(findings, anomaly.FindingLateArrival)
	}

	if e.ClockOut != nil && e.ScheduledEnd != nil &&
		-v.EndVarianceMinutes > sched.GraceEarlyMinutes {
		findings = append(findings, anomaly.FindingEarlyDeparture)
	}

	if e.ClockIn != nil {
		if day, ok := sched.DayFor(e.ClockIn.In(loc)); ok && day.IsWorkDay {
			if e.TotalBreakMinutes > day.BreakDurationMinutes+d.cfg.BreakGraceMinutes {
				findings = append(findings, anomaly.FindingExcessiveBreak)
			}
		}
	}

	return findings
}

// Variance computes the signed actual-vs-scheduled differences. Components
// whose scheduled or actual counterpart is absent are zero.
func (d *Detector) Variance(e *timesheet.Entry) anomaly.Variance {
	var v anomaly.Variance

	if e.ClockIn != nil && e.ScheduledStart != nil {
		v.StartVarianceMinutes = int(math.Round(e.ClockIn.Sub(*e.ScheduledStart).Minutes()))
	}
	if e.ClockOut != nil && e.ScheduledEnd != nil {
		v.EndVarianceMinutes = int(math.Round(e.ClockOut.Sub(*e.ScheduledEnd).Minutes()))
	}
	if e.ScheduledWorkHours != nil && e.ClockOut != nil {
		v.DurationVarianceHours = e.ActualWorkHours - *e.ScheduledWorkHours
	}

	return v
}

// Efficiency is actualWorkHours over scheduledWorkHours, capped at
// MaxEfficiency. Without a schedule it is defined as 1.0 by policy.
func (d *Detector) Efficiency(e *timesheet.Entry) float64 {
	if e.ScheduledWorkHours == nil || *e.ScheduledWorkHours == 0 {
		return 1.0
	}
	efficiency := e.ActualWorkHours / *e.ScheduledWorkHours
	if efficiency > anomaly.MaxEfficiency {
		return anomaly.MaxEfficiency
	}
	return efficiency
}
