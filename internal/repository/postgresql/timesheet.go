package postgresql

import (
	"context"
	"errors"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/timesheet"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	id, worker_id, tenant_id, date, status,
	clock_in, clock_in_location, clock_in_note,
	clock_out, clock_out_location, clock_out_note,
	breaks, scheduled_start, scheduled_end, scheduled_work_hours,
	actual_work_hours, overtime_hours, total_break_minutes,
	is_validated, manager_notes, validated_by, validated_at,
	version, created_at, updated_at
`

func scanEntry(row pgx.Row) (*timesheet.Entry, error) {
	var e timesheet.Entry
	err := row.Scan(
		&e.ID, &e.WorkerID, &e.TenantID, &e.Date, &e.Status,
		&e.ClockIn, &e.ClockInLocation, &e.ClockInNote,
		&e.ClockOut, &e.ClockOutLocation, &e.ClockOutNote,
		&e.Breaks, &e.ScheduledStart, &e.ScheduledEnd, &e.ScheduledWorkHours,
		&e.ActualWorkHours, &e.OvertimeHours, &e.TotalBreakMinutes,
		&e.IsValidated, &e.ManagerNotes, &e.ValidatedBy, &e.ValidatedAt,
		&e.Version, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByWorkerAndDate implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID, date, tenantID string) (*timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheet_entries
		WHERE worker_id = $1 AND date = $2 AND tenant_id = $3
	`

	e, err := scanEntry(q.QueryRow(ctx, query, workerID, date, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}

// GetOpenByWorker implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) GetOpenByWorker(ctx context.Context, workerID, tenantID string) (*timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheet_entries
		WHERE worker_id = $1 AND tenant_id = $2
		  AND clock_in IS NOT NULL AND clock_out IS NULL
		ORDER BY date DESC
		LIMIT 1
	`

	e, err := scanEntry(q.QueryRow(ctx, query, workerID, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, timesheet.ErrEntryNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) Create(ctx context.Context, e *timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheet_entries (
			id, worker_id, tenant_id, date, status,
			clock_in, clock_in_location, clock_in_note,
			clock_out, clock_out_location, clock_out_note,
			breaks, scheduled_start, scheduled_end, scheduled_work_hours,
			actual_work_hours, overtime_hours, total_break_minutes,
			is_validated, manager_notes, validated_by, validated_at,
			version, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			1, NOW(), NOW()
		)
	`

	_, err := q.Exec(ctx, query,
		e.ID, e.WorkerID, e.TenantID, e.Date, e.Status,
		e.ClockIn, e.ClockInLocation, e.ClockInNote,
		e.ClockOut, e.ClockOutLocation, e.ClockOutNote,
		e.Breaks, e.ScheduledStart, e.ScheduledEnd, e.ScheduledWorkHours,
		e.ActualWorkHours, e.OvertimeHours, e.TotalBreakMinutes,
		e.IsValidated, e.ManagerNotes, e.ValidatedBy, e.ValidatedAt,
	)
	if err != nil {
		return err
	}
	e.Version = 1
	return nil
}

// Update implements timesheet.TimesheetRepository. The write is conditional
// on the version the entry was read at; a lost race surfaces as
// ErrConcurrentUpdate instead of silently overwriting the other writer.
func (r *timesheetRepositoryImpl) Update(ctx context.Context, e *timesheet.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE timesheet_entries
		SET status = $1,
			clock_in = $2, clock_in_location = $3, clock_in_note = $4,
			clock_out = $5, clock_out_location = $6, clock_out_note = $7,
			breaks = $8, scheduled_start = $9, scheduled_end = $10,
			scheduled_work_hours = $11, actual_work_hours = $12,
			overtime_hours = $13, total_break_minutes = $14,
			is_validated = $15, manager_notes = $16,
			validated_by = $17, validated_at = $18,
			version = version + 1, updated_at = NOW()
		WHERE id = $19 AND version = $20
	`

	tag, err := q.Exec(ctx, query,
		e.Status,
		e.ClockIn, e.ClockInLocation, e.ClockInNote,
		e.ClockOut, e.ClockOutLocation, e.ClockOutNote,
		e.Breaks, e.ScheduledStart, e.ScheduledEnd,
		e.ScheduledWorkHours, e.ActualWorkHours,
		e.OvertimeHours, e.TotalBreakMinutes,
		e.IsValidated, e.ManagerNotes,
		e.ValidatedBy, e.ValidatedAt,
		e.ID, e.Version,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrConcurrentUpdate
	}
	e.Version++
	return nil
}

// ListByWorker implements timesheet.TimesheetRepository.
func (r *timesheetRepositoryImpl) ListByWorker(ctx context.Context, workerID, fromDate, toDate, tenantID string) ([]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheet_entries
		WHERE worker_id = $1 AND tenant_id = $2
		  AND date >= $3 AND date <= $4
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, workerID, tenantID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]timesheet.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}

	return entries, rows.Err()
}
