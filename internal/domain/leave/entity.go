package leave

import (
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

var RequestStatusValues = []string{
	string(RequestPending),
	string(RequestApproved),
	string(RequestRejected),
}

// LeaveRequest is the unit of the approval flow. Approving one is the only
// clock-independent path that debits the leave ledger.
type LeaveRequest struct {
	ID        string
	WorkerID  string
	TenantID  string
	Category  worker.LeaveCategory
	Days      float64 // fractional days allowed
	Reason    *string
	Status    RequestStatus
	DecidedBy *string
	DecidedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
