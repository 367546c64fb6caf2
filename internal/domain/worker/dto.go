package worker

import (
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE LEDGER DTOs
// ========================================

type AdjustLeaveBalanceRequest struct {
	WorkerID string  `json:"worker_id"`
	TenantID string  `json:"tenant_id"`
	Category string  `json:"category"`
	Delta    float64 `json:"delta"`
}

func (r *AdjustLeaveBalanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if !validator.IsInSlice(r.Category, LeaveCategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "unknown leave category",
		})
	}

	if r.Delta == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "delta",
			Message: "delta must be non-zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ResetLeaveBalancesRequest struct {
	WorkerID string             `json:"worker_id"`
	TenantID string             `json:"tenant_id"`
	Balances map[string]float64 `json:"balances"`
}

func (r *ResetLeaveBalancesRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	for category, balance := range r.Balances {
		if !validator.IsInSlice(category, LeaveCategoryValues) {
			errs = append(errs, validator.ValidationError{
				Field:   "balances." + category,
				Message: "unknown leave category",
			})
		}
		if balance < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "balances." + category,
				Message: "balance must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveBalancesResponse struct {
	WorkerID string             `json:"worker_id"`
	Balances map[string]float64 `json:"balances"`
}

func NewLeaveBalancesResponse(w *Worker) LeaveBalancesResponse {
	balances := make(map[string]float64, len(w.LeaveBalances))
	for category, balance := range w.LeaveBalances {
		balances[string(category)] = balance
	}
	return LeaveBalancesResponse{
		WorkerID: w.ID,
		Balances: balances,
	}
}
