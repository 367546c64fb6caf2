package leave

import "context"

type LeaveRequestRepository interface {
	// Create inserts a pending request.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a request with tenant isolation.
	GetByID(ctx context.Context, id string, tenantID string) (*LeaveRequest, error)

	// UpdateStatus records an approve/reject decision.
	UpdateStatus(ctx context.Context, req *LeaveRequest) error
}
