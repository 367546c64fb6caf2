package postgresql

import (
	"context"
	"errors"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/schedule"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (*schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, name, grace_late_minutes, grace_early_minutes,
			   created_at, updated_at
		FROM work_schedules
		WHERE id = $1 AND tenant_id = $2
	`

	var s schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&s.ID, &s.TenantID, &s.Name, &s.GraceLateMinutes, &s.GraceEarlyMinutes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, err
	}

	daysQuery := `
		SELECT day_of_week, is_work_day, start_time, end_time, break_duration_minutes
		FROM work_schedule_days
		WHERE work_schedule_id = $1
		ORDER BY day_of_week
	`

	rows, err := q.Query(ctx, daysQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d schedule.WorkDay
		if err := rows.Scan(
			&d.DayOfWeek, &d.IsWorkDay, &d.StartTime, &d.EndTime, &d.BreakDurationMinutes,
		); err != nil {
			return nil, err
		}
		s.Days = append(s.Days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &s, nil
}
