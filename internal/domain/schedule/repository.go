package schedule

import "context"

type WorkScheduleRepository interface {
	// GetByID retrieves a schedule with its work-day rows.
	GetByID(ctx context.Context, id string, tenantID string) (*WorkSchedule, error)
}
