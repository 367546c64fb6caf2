package postgresql

import (
	"context"
	"errors"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, worker_id, tenant_id, category, days, reason, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.WorkerID, req.TenantID, req.Category, req.Days, req.Reason, req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string, tenantID string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, tenant_id, category, days, reason, status,
			   decided_by, decided_at, created_at, updated_at
		FROM leave_requests
		WHERE id = $1 AND tenant_id = $2
	`

	var req leave.LeaveRequest
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&req.ID, &req.WorkerID, &req.TenantID, &req.Category, &req.Days,
		&req.Reason, &req.Status, &req.DecidedBy, &req.DecidedAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, err
	}

	return &req, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req *leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4 AND tenant_id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, req.DecidedBy, req.DecidedAt, req.ID, req.TenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}
