package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)

	// ListActive returns every active employee; the absence sweep iterates it.
	ListActive(ctx context.Context) ([]Employee, error)
	// ListAll ignores employment status so resigned staff still get recapped.
	ListAll(ctx context.Context) ([]Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
}
