package worker

import "errors"

// Worker domain errors
var (
	ErrWorkerNotFound = errors.New("worker not found")
	ErrWorkerInactive = errors.New("worker is deactivated")

	// Ledger errors
	ErrInsufficientBalance  = errors.New("insufficient leave balance")
	ErrInvalidLeaveCategory = errors.New("unknown leave category")
	ErrNegativeBalance      = errors.New("leave balance must not be negative")
)
