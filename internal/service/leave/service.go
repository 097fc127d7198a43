package leave

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	tx database.Transactor
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.Transactor,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		tx:                     tx,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (l *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByUserID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if emp.ManagerID == nil {
		return leave.LeaveRequestResponse{}, leave.ErrNoApproverAssigned
	}

	var created leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		overlap, err := l.LeaveRequestRepository.HasOverlap(ctx, emp.ID, req.Start, req.End)
		if err != nil {
			return err
		}
		if overlap {
			return leave.ErrOverlappingLeave
		}

		created, err = l.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID: emp.ID,
			ManagerID:  emp.ManagerID,
			LeaveType:  req.LeaveType,
			StartDate:  req.Start,
			EndDate:    req.End,
			Reason:     req.LeaveReason,
			Status:     leave.LeaveRequestStatusPending,
		})
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request created", "leave_request_id", created.ID, "employee_id", emp.ID, "manager_id", *emp.ManagerID)
	return leave.NewLeaveRequestResponse(created), nil
}

// GetMyLeaveRequests implements leave.LeaveService.
func (l *LeaveServiceImpl) GetMyLeaveRequests(ctx context.Context, userID string) ([]leave.LeaveRequestResponse, error) {
	emp, err := l.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// GetApprovalList implements leave.LeaveService.
func (l *LeaveServiceImpl) GetApprovalList(ctx context.Context, userID string, status *string) ([]leave.LeaveRequestResponse, error) {
	var statusFilter *leave.LeaveRequestStatus
	if status != nil && *status != "" {
		if !validator.IsInSlice(*status, []string{
			string(leave.LeaveRequestStatusPending),
			string(leave.LeaveRequestStatusApproved),
			string(leave.LeaveRequestStatusRejected),
		}) {
			return nil, validator.ValidationErrors{{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			}}
		}
		s := leave.LeaveRequestStatus(*status)
		statusFilter = &s
	}

	manager, err := l.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByManager(ctx, manager.ID, statusFilter)
	if err != nil {
		return nil, err
	}
	return leave.NewLeaveRequestResponses(requests), nil
}

// UpdateLeaveRequestStatus implements leave.LeaveService.
func (l *LeaveServiceImpl) UpdateLeaveRequestStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	manager, err := l.EmployeeRepository.GetByUserID(ctx, req.UserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err = l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		if request.ManagerID == nil || *request.ManagerID != manager.ID {
			return leave.ErrNotApprover
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		updated, err = l.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatus(req.Status))
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	slog.Info("Leave request processed", "leave_request_id", updated.ID, "status", updated.Status, "manager_id", manager.ID)
	return leave.NewLeaveRequestResponse(updated), nil
}

// CancelLeaveRequest implements leave.LeaveService. Only the owner may
// cancel, and only while the request is pending.
func (l *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, userID, requestID string) error {
	emp, err := l.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	return l.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.EmployeeID != emp.ID {
			return leave.ErrLeaveRequestNotFound
		}
		if !request.IsPending() {
			return leave.ErrLeaveRequestAlreadyProcessed
		}
		return l.LeaveRequestRepository.Delete(ctx, requestID)
	})
}
