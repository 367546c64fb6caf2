package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	workerRepo  worker.WorkerRepository
	requestRepo leave.LeaveRequestRepository

	now  func() time.Time
	inTx func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewLeaveService(db *database.DB, workerRepo worker.WorkerRepository, requestRepo leave.LeaveRequestRepository) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		workerRepo:  workerRepo,
		requestRepo: requestRepo,
		now:         time.Now,
		inTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// AdjustLeaveBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) AdjustLeaveBalance(ctx context.Context, req worker.AdjustLeaveBalanceRequest) (worker.LeaveBalancesResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	if err := w.AdjustLeaveBalance(worker.LeaveCategory(req.Category), req.Delta); err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	if err := s.workerRepo.UpdateLeaveBalances(ctx, w); err != nil {
		return worker.LeaveBalancesResponse{}, fmt.Errorf("failed to save leave balances: %w", err)
	}

	return worker.NewLeaveBalancesResponse(w), nil
}

// ResetLeaveBalances implements leave.LeaveService.
func (s *LeaveServiceImpl) ResetLeaveBalances(ctx context.Context, req worker.ResetLeaveBalancesRequest) (worker.LeaveBalancesResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	balances := make(map[worker.LeaveCategory]float64, len(req.Balances))
	for category, balance := range req.Balances {
		balances[worker.LeaveCategory(category)] = balance
	}
	if err := w.ResetLeaveBalances(balances); err != nil {
		return worker.LeaveBalancesResponse{}, err
	}

	if err := s.workerRepo.UpdateLeaveBalances(ctx, w); err != nil {
		return worker.LeaveBalancesResponse{}, fmt.Errorf("failed to save leave balances: %w", err)
	}

	return worker.NewLeaveBalancesResponse(w), nil
}

// CreateRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	w, err := s.loadWorker(ctx, req.WorkerID, req.TenantID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// Filing is allowed to overdraw nothing: the balance check happens
	// again at approval, but rejecting an obviously unfundable request
	// early saves the manager a round trip.
	category := worker.LeaveCategory(req.Category)
	if w.LeaveBalance(category) < req.Days {
		return leave.LeaveRequestResponse{}, worker.ErrInsufficientBalance
	}

	request := leave.LeaveRequest{
		ID:       uuid.NewString(),
		WorkerID: w.ID,
		TenantID: w.TenantID,
		Category: category,
		Days:     req.Days,
		Reason:   req.Reason,
		Status:   leave.RequestPending,
	}

	created, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.NewLeaveRequestResponse(&created), nil
}

// ApproveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.loadRequest(ctx, req.RequestID, req.TenantID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	w, err := s.loadWorker(ctx, request.WorkerID, request.TenantID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	// The debit is all-or-nothing: an insufficient balance aborts before
	// the request or the ledger is touched.
	if err := w.AdjustLeaveBalance(request.Category, -request.Days); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decidedAt := s.now().UTC()
	request.Status = leave.RequestApproved
	request.DecidedBy = &req.DecidedBy
	request.DecidedAt = &decidedAt

	// Ledger debit and request state change land together or not at all.
	err = s.inTx(ctx, func(ctx context.Context) error {
		if err := s.workerRepo.UpdateLeaveBalances(ctx, w); err != nil {
			return fmt.Errorf("failed to save leave balances: %w", err)
		}
		if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.NewLeaveRequestResponse(request), nil
}

// RejectRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectRequest(ctx context.Context, req leave.DecideLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.loadRequest(ctx, req.RequestID, req.TenantID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	decidedAt := s.now().UTC()
	request.Status = leave.RequestRejected
	request.DecidedBy = &req.DecidedBy
	request.DecidedAt = &decidedAt
	if err := s.requestRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return leave.NewLeaveRequestResponse(request), nil
}

func (s *LeaveServiceImpl) loadWorker(ctx context.Context, workerID, tenantID string) (*worker.Worker, error) {
	w, err := s.workerRepo.GetByID(ctx, workerID, tenantID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return nil, worker.ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return w, nil
}

func (s *LeaveServiceImpl) loadRequest(ctx context.Context, requestID, tenantID string) (*leave.LeaveRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID, tenantID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return nil, leave.ErrLeaveRequestNotFound
		}
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request.Status != leave.RequestPending {
		return nil, leave.ErrLeaveRequestAlreadyProcessed
	}
	return request, nil
}
