package employee

import "context"

type EmployeeService interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
}
