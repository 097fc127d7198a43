package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a clocked-in record. A second record for the same
	// (employee, date) fails with ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when the employee has no record that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetClockOut writes clock_out (nil reopens the day).
	SetClockOut(ctx context.Context, id string, clockOut *time.Time) (Attendance, error)

	// ListByEmployee returns records newest first.
	ListByEmployee(ctx context.Context, employeeID string, filter HistoryFilter) ([]Attendance, int64, error)

	// ListByEmployeeBetween returns records with from <= date < to.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// CreateAbsent inserts an absent row unless one exists for the day.
	// It reports whether a row was written.
	CreateAbsent(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
