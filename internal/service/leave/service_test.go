package leave

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/leave"
	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeWorkerRepo struct {
	workers map[string]*worker.Worker
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id, _ string) (*worker.Worker, error) {
	w, ok := f.workers[id]
	if !ok {
		return nil, worker.ErrWorkerNotFound
	}
	copied := *w
	copied.LeaveBalances = make(map[worker.LeaveCategory]float64, len(w.LeaveBalances))
	for c, b := range w.LeaveBalances {
		copied.LeaveBalances[c] = b
	}
	return &copied, nil
}

func (f *fakeWorkerRepo) UpdateLeaveBalances(_ context.Context, w *worker.Worker) error {
	f.workers[w.ID] = w
	return nil
}

type fakeRequestRepo struct {
	requests map[string]*leave.LeaveRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	copied := req
	f.requests[req.ID] = &copied
	return req, nil
}

func (f *fakeRequestRepo) GetByID(_ context.Context, id, _ string) (*leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, leave.ErrLeaveRequestNotFound
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestRepo) UpdateStatus(_ context.Context, req *leave.LeaveRequest) error {
	f.requests[req.ID] = req
	return nil
}

func newTestService(workers ...*worker.Worker) (*LeaveServiceImpl, *fakeWorkerRepo, *fakeRequestRepo) {
	workerRepo := &fakeWorkerRepo{workers: make(map[string]*worker.Worker)}
	for _, w := range workers {
		workerRepo.workers[w.ID] = w
	}
	requestRepo := &fakeRequestRepo{requests: make(map[string]*leave.LeaveRequest)}
	svc := NewLeaveService(nil, workerRepo, requestRepo)
	svc.inTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	return svc, workerRepo, requestRepo
}

func testWorker(id string, balances map[worker.LeaveCategory]float64) *worker.Worker {
	return &worker.Worker{ID: id, TenantID: "t1", Active: true, LeaveBalances: balances}
}

// ===== LEDGER OPERATIONS =====

func TestLeaveService_AdjustLeaveBalance_Credit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, workerRepo, _ := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 10}))

	resp, err := svc.AdjustLeaveBalance(ctx, worker.AdjustLeaveBalanceRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Delta: 2.5,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.5, resp.Balances["vacation"])
	assert.Equal(t, 12.5, workerRepo.workers["w1"].LeaveBalance(worker.LeaveVacation), "the new table is persisted")
}

func TestLeaveService_AdjustLeaveBalance_InsufficientBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, workerRepo, _ := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 3}))

	_, err := svc.AdjustLeaveBalance(ctx, worker.AdjustLeaveBalanceRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Delta: -5,
	})

	require.ErrorIs(t, err, worker.ErrInsufficientBalance)
	assert.Equal(t, 3.0, workerRepo.workers["w1"].LeaveBalance(worker.LeaveVacation), "balance remains 3")
}

func TestLeaveService_AdjustLeaveBalance_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService(testWorker("w1", nil))

	_, err := svc.AdjustLeaveBalance(ctx, worker.AdjustLeaveBalanceRequest{
		WorkerID: "w1", TenantID: "t1", Category: "sabbatical", Delta: 1,
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "category")
}

func TestLeaveService_ResetLeaveBalances_AppliesDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 1}))

	resp, err := svc.ResetLeaveBalances(ctx, worker.ResetLeaveBalancesRequest{
		WorkerID: "w1", TenantID: "t1", Balances: map[string]float64{"vacation": 25},
	})

	require.NoError(t, err)
	assert.Equal(t, 25.0, resp.Balances["vacation"])
	assert.Equal(t, worker.DefaultLeaveBalances()[worker.LeaveSick], resp.Balances["sick"])
	assert.Len(t, resp.Balances, len(worker.LeaveCategoryValues))
}

// ===== REQUEST FLOW =====

func TestLeaveService_ApproveRequest_DebitsLedger(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, workerRepo, requestRepo := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 10}))

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Days: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.RequestPending), created.Status)

	resp, err := svc.ApproveRequest(ctx, leave.DecideLeaveRequestRequest{
		RequestID: created.ID, TenantID: "t1", DecidedBy: "mgr-7",
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.RequestApproved), resp.Status)
	assert.Equal(t, "mgr-7", *resp.DecidedBy)
	assert.Equal(t, 6.0, workerRepo.workers["w1"].LeaveBalance(worker.LeaveVacation))
	assert.Equal(t, leave.RequestApproved, requestRepo.requests[created.ID].Status)
}

func TestLeaveService_ApproveRequest_InsufficientBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, workerRepo, requestRepo := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 5}))

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Days: 5,
	})
	require.NoError(t, err)

	// Balance shrinks between filing and approval.
	_, err = svc.AdjustLeaveBalance(ctx, worker.AdjustLeaveBalanceRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Delta: -2,
	})
	require.NoError(t, err)

	_, err = svc.ApproveRequest(ctx, leave.DecideLeaveRequestRequest{
		RequestID: created.ID, TenantID: "t1", DecidedBy: "mgr-7",
	})

	require.ErrorIs(t, err, worker.ErrInsufficientBalance)
	assert.Equal(t, 3.0, workerRepo.workers["w1"].LeaveBalance(worker.LeaveVacation), "no partial debit")
	assert.Equal(t, leave.RequestPending, requestRepo.requests[created.ID].Status, "the request stays pending")
}

func TestLeaveService_CreateRequest_RejectsUnfundable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 3}))

	_, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Days: 5,
	})

	assert.ErrorIs(t, err, worker.ErrInsufficientBalance)
}

func TestLeaveService_ApproveRequest_AlreadyProcessed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService(testWorker("w1", map[worker.LeaveCategory]float64{worker.LeaveVacation: 10}))

	created, err := svc.CreateRequest(ctx, leave.CreateLeaveRequestRequest{
		WorkerID: "w1", TenantID: "t1", Category: "vacation", Days: 1,
	})
	require.NoError(t, err)

	_, err = svc.RejectRequest(ctx, leave.DecideLeaveRequestRequest{
		RequestID: created.ID, TenantID: "t1", DecidedBy: "mgr-7",
	})
	require.NoError(t, err)

	_, err = svc.ApproveRequest(ctx, leave.DecideLeaveRequestRequest{
		RequestID: created.ID, TenantID: "t1", DecidedBy: "mgr-7",
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestLeaveService_ApproveRequest_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newTestService(testWorker("w1", nil))

	_, err := svc.ApproveRequest(ctx, leave.DecideLeaveRequestRequest{
		RequestID: "ghost", TenantID: "t1", DecidedBy: "mgr-7",
	})

	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
