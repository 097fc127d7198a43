package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrOverlappingLeave             = errors.New("a leave request already exists in this date range")
	ErrNotApprover                  = errors.New("only the assigned manager can process this leave request")
	ErrNoApproverAssigned           = errors.New("no manager assigned to approve your leave requests")
)
