package timesheet

import (
	"context"
)

// TimesheetService defines the clock/break/correction operations exposed to
// collaborators. Every mutation returns the updated entry or a typed error;
// nothing is retried internally.
type TimesheetService interface {
	// ClockIn starts the worker's day, creating the entry lazily.
	ClockIn(ctx context.Context, req ClockInRequest) (EntryResponse, error)

	// ClockOut terminates the day and recomputes derived hours and status.
	ClockOut(ctx context.Context, req ClockOutRequest) (EntryResponse, error)

	// StartBreak opens a break on today's entry.
	StartBreak(ctx context.Context, req StartBreakRequest) (EntryResponse, error)

	// EndBreak terminates an open break.
	EndBreak(ctx context.Context, req EndBreakRequest) (EntryResponse, error)

	// Correct applies a manager correction and re-derives all computed
	// fields atomically.
	Correct(ctx context.Context, req CorrectionRequest) (EntryResponse, error)

	// ValidateEntry records supervisory sign-off on an entry.
	ValidateEntry(ctx context.Context, req ValidateEntryRequest) (EntryResponse, error)

	// GetEntry retrieves one worker-day record.
	GetEntry(ctx context.Context, workerID, date, tenantID string) (EntryResponse, error)
}
