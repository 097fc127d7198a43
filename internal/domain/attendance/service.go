package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn evaluates on-time vs late and advances the caller's streak
	ClockIn(ctx context.Context, userID string) (ClockInResponse, error)

	// ClockOut closes today's open record
	ClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	// CancelClockOut reopens today's record
	CancelClockOut(ctx context.Context, userID string) (AttendanceResponse, error)

	GetStatus(ctx context.Context, userID string) (StatusResponse, error)

	// GetHistory retrieves the caller's records, newest first
	GetHistory(ctx context.Context, filter HistoryFilter) (ListAttendanceResponse, error)
}

// AbsenceSweeper marks employees with neither a record nor approved leave
// as absent for a day.
type AbsenceSweeper interface {
	SweepAbsences(ctx context.Context, date time.Time) (SweepResponse, error)
	// Today returns the current office-local date.
	Today(ctx context.Context) (time.Time, error)
}
