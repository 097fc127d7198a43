package http

import (
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetMyRequests(w http.ResponseWriter, r *http.Request)
	GetApprovalList(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	CancelRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	errorReporter
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService, recorder errorlog.Recorder) LeaveHandler {
	return &LeaveHandlerImpl{
		errorReporter: errorReporter{recorder: recorder},
		leaveService:  leaveService,
	}
}

// CreateRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequestRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.UserID = middleware.UserID(r)

	result, err := l.leaveService.CreateLeaveRequest(r.Context(), req)
	if err != nil {
		l.fail(w, r, err)
		return
	}

	response.Created(w, "Leave request submitted", result)
}

// GetMyRequests implements LeaveHandler.
func (l *LeaveHandlerImpl) GetMyRequests(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.GetMyLeaveRequests(r.Context(), middleware.UserID(r))
	if err != nil {
		l.fail(w, r, err)
		return
	}

	response.Success(w, result)
}

// GetApprovalList implements LeaveHandler. ?status narrows the list.
func (l *LeaveHandlerImpl) GetApprovalList(w http.ResponseWriter, r *http.Request) {
	result, err := l.leaveService.GetApprovalList(r.Context(), middleware.UserID(r), queryString(r, "status"))
	if err != nil {
		l.fail(w, r, err)
		return
	}

	response.Success(w, result)
}

// UpdateStatus implements LeaveHandler.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req leave.UpdateStatusRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.UserID = middleware.UserID(r)
	req.ID = id

	result, err := l.leaveService.UpdateLeaveRequestStatus(r.Context(), req)
	if err != nil {
		l.fail(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+result.Status, result)
}

// CancelRequest implements LeaveHandler.
func (l *LeaveHandlerImpl) CancelRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := l.leaveService.CancelLeaveRequest(r.Context(), middleware.UserID(r), id); err != nil {
		l.fail(w, r, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", nil)
}
