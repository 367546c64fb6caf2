package worker

import "context"

type WorkerRepository interface {
	// GetByID retrieves a worker with leave balances and geofence settings.
	GetByID(ctx context.Context, id string, tenantID string) (*Worker, error)

	// UpdateLeaveBalances persists the full balance table for a worker.
	UpdateLeaveBalances(ctx context.Context, w *Worker) error
}
