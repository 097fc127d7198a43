package user

import (
	"context"
)

type UserRepository interface {
	// GetByEmail matches case-insensitively and fills EmployeeID when the
	// user has an employee profile.
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
