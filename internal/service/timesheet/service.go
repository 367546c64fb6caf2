package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/geo"
)

type TimesheetServiceImpl struct {
	workerRepo    worker.WorkerRepository
	timesheetRepo timesheet.TimesheetRepository
	scheduleRepo  schedule.WorkScheduleRepository

	now func() time.Time
}

func NewTimesheetService(
	workerRepo worker.WorkerRepository,
	timesheetRepo timesheet.TimesheetRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		workerRepo:    workerRepo,
		timesheetRepo: timesheetRepo,
		scheduleRepo:  scheduleRepo,
		now:           time.Now,
	}
}

// ClockIn implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ClockIn(ctx context.Context, req timesheet.ClockInRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.checkGeofence(w, req.Location); err != nil {
		return timesheet.EntryResponse{}, err
	}

	nowUTC := s.now().UTC()
	loc := w.Location()
	dateLocal := nowUTC.In(loc).Format("2006-01-02")

	entry, err := s.timesheetRepo.GetByWorkerAndDate(ctx, w.ID, dateLocal, w.TenantID)
	created := false
	if err != nil {
		if !errors.Is(err, timesheet.ErrEntryNotFound) {
			return timesheet.EntryResponse{}, fmt.Errorf("failed to get timesheet entry: %w", err)
		}
		entry = timesheet.NewEntry(w.ID, w.TenantID, dateLocal)
		created = true

		if err := s.resolveSchedule(ctx, w, entry, nowUTC, loc); err != nil {
			return timesheet.EntryResponse{}, err
		}
	}

	if err := entry.RecordClockIn(nowUTC, req.Location, req.Note); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if created {
		err = s.timesheetRepo.Create(ctx, entry)
	} else {
		err = s.timesheetRepo.Update(ctx, entry)
	}
	if err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// ClockOut implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ClockOut(ctx context.Context, req timesheet.ClockOutRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.checkGeofence(w, req.Location); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.openEntry(ctx, w)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := entry.RecordClockOut(s.now().UTC(), req.Location, req.Note); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.timesheetRepo.Update(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// StartBreak implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) StartBreak(ctx context.Context, req timesheet.StartBreakRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.openEntry(ctx, w)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if _, err := entry.StartBreak(timesheet.BreakType(req.Type), s.now().UTC(), req.Location); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.timesheetRepo.Update(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// EndBreak implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) EndBreak(ctx context.Context, req timesheet.EndBreakRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.openEntry(ctx, w)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if _, err := entry.EndBreak(req.BreakID, s.now().UTC(), req.Location); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.timesheetRepo.Update(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// Correct implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Correct(ctx context.Context, req timesheet.CorrectionRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.timesheetRepo.GetByWorkerAndDate(ctx, req.WorkerID, req.Date, req.TenantID)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return timesheet.EntryResponse{}, timesheet.ErrEntryNotFound
		}
		return timesheet.EntryResponse{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}

	correction := timesheet.Correction{
		ClockIn:            req.ClockIn,
		ClockOut:           req.ClockOut,
		ScheduledStart:     req.ScheduledStart,
		ScheduledEnd:       req.ScheduledEnd,
		ScheduledWorkHours: req.ScheduledWorkHours,
		ManagerNotes:       req.ManagerNotes,
	}
	if err := entry.ApplyCorrection(correction); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if err := s.timesheetRepo.Update(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// ValidateEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ValidateEntry(ctx context.Context, req timesheet.ValidateEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry, err := s.timesheetRepo.GetByWorkerAndDate(ctx, req.WorkerID, req.Date, req.TenantID)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return timesheet.EntryResponse{}, timesheet.ErrEntryNotFound
		}
		return timesheet.EntryResponse{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}

	entry.Validate(req.ValidatedBy, req.Notes, s.now().UTC())

	if err := s.timesheetRepo.Update(ctx, entry); err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to save timesheet entry: %w", err)
	}

	return timesheet.NewEntryResponse(entry), nil
}

// GetEntry implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetEntry(ctx context.Context, workerID, date, tenantID string) (timesheet.EntryResponse, error) {
	entry, err := s.timesheetRepo.GetByWorkerAndDate(ctx, workerID, date, tenantID)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return timesheet.EntryResponse{}, timesheet.ErrEntryNotFound
		}
		return timesheet.EntryResponse{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}
	return timesheet.NewEntryResponse(entry), nil
}

func (s *TimesheetServiceImpl) loadWorker(ctx context.Context, workerID, tenantID string) (*worker.Worker, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID, tenantID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	if !w.Active {
		return nil, worker.ErrWorkerInactive
	}
	return w, nil
}

// checkGeofence gates clock events on the worker's geofence settings. A
// missing point and a non-conforming point are distinct errors: they drive
// different user-facing remediation.
func (s *TimesheetServiceImpl) checkGeofence(w *worker.Worker, location *geo.Point) error {
	if w.Geofence == nil || !w.Geofence.Required {
		return nil
	}
	if location == nil {
		return timesheet.ErrLocationRequired
	}

	ok, err := geo.IsWithinFence(*location, w.Geofence.AllowedZones, w.Geofence.RadiusMeters)
	if err != nil {
		return err
	}
	if !ok {
		return timesheet.ErrLocationOutsideAllowedArea
	}
	return nil
}

// openEntry resolves the worker's open day. Clock-out and break events go
// through here so overnight shifts find their clock-in day's entry.
func (s *TimesheetServiceImpl) openEntry(ctx context.Context, w *worker.Worker) (*timesheet.Entry, error) {
	entry, err := s.timesheetRepo.GetOpenByWorker(ctx, w.ID, w.TenantID)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return nil, timesheet.ErrNotClockedIn
		}
		return nil, fmt.Errorf("failed to get open timesheet entry: %w", err)
	}
	return entry, nil
}

// resolveSchedule stamps the day's scheduled window onto a fresh entry.
// Workers without an assigned schedule clock free-form.
func (s *TimesheetServiceImpl) resolveSchedule(ctx context.Context, w *worker.Worker, entry *timesheet.Entry, nowUTC time.Time, loc *time.Location) error {
	if w.ScheduleID == nil {
		return nil
	}

	sched, err := s.scheduleRepo.GetByID(ctx, *w.ScheduleID, w.TenantID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get work schedule: %w", err)
	}

	start, end, workHours, ok := sched.Window(nowUTC, loc)
	if !ok {
		return nil
	}
	startUTC := start.UTC()
	endUTC := end.UTC()
	entry.ScheduledStart = &startUTC
	entry.ScheduledEnd = &endUTC
	entry.ScheduledWorkHours = &workHours
	return nil
}
