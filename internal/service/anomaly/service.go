package anomaly

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/anomaly"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
)

// AnalysisService resolves a persisted entry plus its collaborators and
// hands them to the pure detector. The detector itself stays free of I/O.
type AnalysisService struct {
	detector      *Detector
	workerRepo    worker.WorkerRepository
	timesheetRepo timesheet.TimesheetRepository
	scheduleRepo  schedule.WorkScheduleRepository
}

func NewAnalysisService(
	detector *Detector,
	workerRepo worker.WorkerRepository,
	timesheetRepo timesheet.TimesheetRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) *AnalysisService {
	return &AnalysisService{
		detector:      detector,
		workerRepo:    workerRepo,
		timesheetRepo: timesheetRepo,
		scheduleRepo:  scheduleRepo,
	}
}

// AnalyzeEntry runs the detector over one worker-day record.
func (s *AnalysisService) AnalyzeEntry(ctx context.Context, workerID, date, tenantID string) (anomaly.Report, error) {
	entry, err := s.timesheetRepo.GetByWorkerAndDate(ctx, workerID, date, tenantID)
	if err != nil {
		if errors.Is(err, timesheet.ErrEntryNotFound) {
			return anomaly.Report{}, timesheet.ErrEntryNotFound
		}
		return anomaly.Report{}, fmt.Errorf("failed to get timesheet entry: %w", err)
	}

	w, err := s.workerRepo.GetByID(ctx, workerID, tenantID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return anomaly.Report{}, worker.ErrWorkerNotFound
		}
		return anomaly.Report{}, fmt.Errorf("failed to get worker: %w", err)
	}

	var sched *schedule.WorkSchedule
	if w.ScheduleID != nil {
		sched, err = s.scheduleRepo.GetByID(ctx, *w.ScheduleID, tenantID)
		if err != nil {
			if !errors.Is(err, schedule.ErrScheduleNotFound) {
				return anomaly.Report{}, fmt.Errorf("failed to get work schedule: %w", err)
			}
			sched = nil
		}
	}

	return s.detector.Analyze(entry, sched, w.Location()), nil
}

// AnalyzeRange runs the detector over every entry of a worker in a date
// range. Detection never fails per entry; only lookups can error.
func (s *AnalysisService) AnalyzeRange(ctx context.Context, workerID, fromDate, toDate, tenantID string) ([]anomaly.Report, error) {
	entries, err := s.timesheetRepo.ListByWorker(ctx, workerID, fromDate, toDate, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheet entries: %w", err)
	}

	w, err := s.workerRepo.GetByID(ctx, workerID, tenantID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}

	var sched *schedule.WorkSchedule
	if w.ScheduleID != nil {
		sched, err = s.scheduleRepo.GetByID(ctx, *w.ScheduleID, tenantID)
		if err != nil {
			if !errors.Is(err, schedule.ErrScheduleNotFound) {
				return nil, fmt.Errorf("failed to get work schedule: %w", err)
			}
			sched = nil
		}
	}

	loc := w.Location()
	reports := make([]anomaly.Report, 0, len(entries))
	for i := range entries {
		reports = append(reports, s.detector.Analyze(&entries[i], sched, loc))
	}

	return reports, nil
}
