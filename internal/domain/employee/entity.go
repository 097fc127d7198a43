package employee

import (
	"time"
)

type Employee struct {
	ID               string
	UserID           string
	ManagerID        *string
	FullName         string
	PhoneNumber      *string
	Position         *string
	Department       *string
	EmploymentDate   *time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	Email       *string
	ManagerName *string
}

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "active"
	EmploymentStatusResigned   EmploymentStatus = "resigned"
	EmploymentStatusTerminated EmploymentStatus = "terminated"
)

func (e *Employee) IsActive() bool {
	return e.EmploymentStatus == EmploymentStatusActive
}
