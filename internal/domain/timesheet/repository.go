package timesheet

import "context"

// TimesheetRepository persists daily entries. Implementations must uphold
// the at-most-one-concurrent-writer contract per (worker, date) key: Update
// is conditional on Version and fails with ErrConcurrentUpdate when the
// stored row has moved on.
type TimesheetRepository interface {
	// GetByWorkerAndDate retrieves the entry for a worker's local day.
	// Returns ErrEntryNotFound when the day has no record yet.
	GetByWorkerAndDate(ctx context.Context, workerID, date, tenantID string) (*Entry, error)

	// GetOpenByWorker retrieves the worker's open day: clocked in, not yet
	// clocked out. Overnight shifts keep their clock-in date key, so this
	// is the lookup clock-out and break events must use. Returns
	// ErrEntryNotFound when no day is open.
	GetOpenByWorker(ctx context.Context, workerID, tenantID string) (*Entry, error)

	// Create inserts a freshly started day.
	Create(ctx context.Context, e *Entry) error

	// Update writes the entry back, conditional on e.Version.
	Update(ctx context.Context, e *Entry) error

	// ListByWorker retrieves entries in a date range, newest first.
	ListByWorker(ctx context.Context, workerID, fromDate, toDate, tenantID string) ([]Entry, error)
}
