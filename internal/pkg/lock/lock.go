// Package lock serialises work per key, e.g. every attendance write of
// one employee.
package lock

import (
	"context"
	"errors"
)

var ErrLockTimeout = errors.New("timed out waiting for lock")

// UnlockFunc releases a held lock. Calling it more than once is a no-op.
type UnlockFunc func()

type Locker interface {
	// Lock blocks until key is held or ctx is done.
	Lock(ctx context.Context, key string) (UnlockFunc, error)
}

// EmployeeKey is the lock key guarding one employee's attendance rows.
func EmployeeKey(employeeID string) string {
	return "attendance:" + employeeID
}
