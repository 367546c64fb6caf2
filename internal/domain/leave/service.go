package leave

import (
	"context"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
)

// LeaveService owns every mutation of the leave-balance ledger. Clock
// events never touch balances; only administrative adjustments and
// request approvals do.
type LeaveService interface {
	// AdjustLeaveBalance applies a signed delta to one category,
	// all-or-nothing.
	AdjustLeaveBalance(ctx context.Context, req worker.AdjustLeaveBalanceRequest) (worker.LeaveBalancesResponse, error)

	// ResetLeaveBalances replaces the balance table, defaulting
	// unspecified categories.
	ResetLeaveBalances(ctx context.Context, req worker.ResetLeaveBalancesRequest) (worker.LeaveBalancesResponse, error)

	// CreateRequest files a pending leave request.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// ApproveRequest debits the ledger and marks the request approved,
	// atomically. An insufficient balance leaves both untouched.
	ApproveRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)

	// RejectRequest marks the request rejected without touching balances.
	RejectRequest(ctx context.Context, req DecideLeaveRequestRequest) (LeaveRequestResponse, error)
}
