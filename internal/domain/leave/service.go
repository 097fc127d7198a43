package leave

import (
	"context"
)

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetMyLeaveRequests(ctx context.Context, userID string) ([]LeaveRequestResponse, error)
	GetApprovalList(ctx context.Context, userID string, status *string) ([]LeaveRequestResponse, error)
	UpdateLeaveRequestStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)
	CancelLeaveRequest(ctx context.Context, userID, requestID string) error
}
