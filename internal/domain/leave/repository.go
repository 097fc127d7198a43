package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// HasOverlap reports whether a non-rejected request of the employee
	// intersects [start, end].
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)

	// ListByEmployee returns the employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListByManager returns requests assigned to the manager, newest first.
	ListByManager(ctx context.Context, managerID string, status *LeaveRequestStatus) ([]LeaveRequest, error)

	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)
	Delete(ctx context.Context, id string) error

	// HasApprovedLeaveOn reports whether an approved request covers date.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)
}
