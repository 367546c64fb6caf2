package postgresql

import (
	"context"
	"errors"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/geo"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (*worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, department, schedule_id, timezone,
			   leave_balances, geofence_required, geofence_radius_m,
			   geofence_zones, active, created_at, updated_at
		FROM workers
		WHERE id = $1 AND tenant_id = $2
	`

	var w worker.Worker
	var balances map[string]float64
	var geofenceRequired *bool
	var geofenceRadius *float64
	var geofenceZones []geo.Point

	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&w.ID, &w.TenantID, &w.Department, &w.ScheduleID, &w.Timezone,
		&balances, &geofenceRequired, &geofenceRadius,
		&geofenceZones, &w.Active, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, err
	}

	w.LeaveBalances = make(map[worker.LeaveCategory]float64, len(balances))
	for category, balance := range balances {
		w.LeaveBalances[worker.LeaveCategory(category)] = balance
	}

	if geofenceRequired != nil || geofenceRadius != nil || len(geofenceZones) > 0 {
		settings := &worker.GeofenceSettings{AllowedZones: geofenceZones}
		if geofenceRequired != nil {
			settings.Required = *geofenceRequired
		}
		if geofenceRadius != nil {
			settings.RadiusMeters = *geofenceRadius
		}
		w.Geofence = settings
	}

	return &w, nil
}

// UpdateLeaveBalances implements worker.WorkerRepository.
func (r *workerRepositoryImpl) UpdateLeaveBalances(ctx context.Context, w *worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	balances := make(map[string]float64, len(w.LeaveBalances))
	for category, balance := range w.LeaveBalances {
		balances[string(category)] = balance
	}

	query := `
		UPDATE workers
		SET leave_balances = $1, updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3
	`

	tag, err := q.Exec(ctx, query, balances, w.ID, w.TenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}
