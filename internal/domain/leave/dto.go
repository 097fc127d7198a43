package leave

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	UserID      string `json:"-"`
	LeaveType   string `json:"leave_type"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	LeaveReason string `json:"leave_reason"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Validate parses StartDate and EndDate into Start and End.
func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	} else if len(r.LeaveType) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must not exceed 50 characters",
		})
	}

	var startOK, endOK bool
	if r.Start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}
	if r.End, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && r.End.Before(r.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.LeaveReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_reason",
			Message: "leave_reason is required",
		})
	} else if len(r.LeaveReason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_reason",
			Message: "leave_reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	UserID string `json:"-"`
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !validator.IsInSlice(r.Status, []string{
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
	ManagerName  *string `json:"manager_name,omitempty"`
	LeaveType    string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	LeaveReason  string  `json:"leave_reason"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		ManagerID:    l.ManagerID,
		ManagerName:  l.ManagerName,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		LeaveReason:  l.Reason,
		Status:       string(l.Status),
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
	}
}

func NewLeaveRequestResponses(list []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewLeaveRequestResponse(l))
	}
	return out
}
