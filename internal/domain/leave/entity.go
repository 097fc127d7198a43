package leave

import (
	"time"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveRequest entity. StartDate and EndDate are calendar days (UTC
// midnight); the interval is inclusive on both ends.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	ManagerID  *string
	LeaveType  string
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveRequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
	ManagerName  *string
}

func (l *LeaveRequest) IsPending() bool {
	return l.Status == LeaveRequestStatusPending
}

// Covers reports whether date falls inside [StartDate, EndDate].
func (l *LeaveRequest) Covers(date time.Time) bool {
	return !date.Before(l.StartDate) && !date.After(l.EndDate)
}
