package leave

import (
	"time"

	"github.com/clockwise-hr/attendance-backend-go/internal/domain/worker"
	"github.com/clockwise-hr/attendance-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	WorkerID string  `json:"worker_id"`
	TenantID string  `json:"tenant_id"`
	Category string  `json:"category"`
	Days     float64 `json:"days"`
	Reason   *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
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

	if !validator.IsInSlice(r.Category, worker.LeaveCategoryValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "unknown leave category",
		})
	}

	if r.Days <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequestRequest struct {
	RequestID string `json:"request_id"`
	TenantID  string `json:"tenant_id"`
	DecidedBy string `json:"decided_by"`
}

func (r *DecideLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if validator.IsEmpty(r.TenantID) {
		errs = append(errs, validator.ValidationError{
			Field:   "tenant_id",
			Message: "tenant_id is required",
		})
	}

	if validator.IsEmpty(r.DecidedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "decided_by",
			Message: "decided_by is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID        string     `json:"id"`
	WorkerID  string     `json:"worker_id"`
	Category  string     `json:"category"`
	Days      float64    `json:"days"`
	Reason    *string    `json:"reason,omitempty"`
	Status    string     `json:"status"`
	DecidedBy *string    `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewLeaveRequestResponse(req *LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:        req.ID,
		WorkerID:  req.WorkerID,
		Category:  string(req.Category),
		Days:      req.Days,
		Reason:    req.Reason,
		Status:    string(req.Status),
		DecidedBy: req.DecidedBy,
		DecidedAt: req.DecidedAt,
		CreatedAt: req.CreatedAt,
	}
}
