package employee

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	Search *string `json:"search,omitempty"`
	Status *string `json:"status,omitempty"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(EmploymentStatusActive),
		string(EmploymentStatusResigned),
		string(EmploymentStatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, resigned, terminated",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string  `json:"id"`
	UserID           string  `json:"user_id"`
	Email            *string `json:"email,omitempty"`
	FullName         string  `json:"full_name"`
	PhoneNumber      *string `json:"phone_number,omitempty"`
	Position         *string `json:"position,omitempty"`
	Department       *string `json:"department,omitempty"`
	ManagerID        *string `json:"manager_id,omitempty"`
	ManagerName      *string `json:"manager_name,omitempty"`
	EmploymentDate   *string `json:"employment_date,omitempty"`
	EmploymentStatus string  `json:"employment_status"`
	CreatedAt        string  `json:"created_at"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		UserID:           e.UserID,
		Email:            e.Email,
		FullName:         e.FullName,
		PhoneNumber:      e.PhoneNumber,
		Position:         e.Position,
		Department:       e.Department,
		ManagerID:        e.ManagerID,
		ManagerName:      e.ManagerName,
		EmploymentStatus: string(e.EmploymentStatus),
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
	}
	if e.EmploymentDate != nil {
		d := e.EmploymentDate.Format("2006-01-02")
		resp.EmploymentDate = &d
	}
	return resp
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}
