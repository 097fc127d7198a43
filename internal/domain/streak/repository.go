package streak

import (
	"context"
	"time"
)

type StreakRepository interface {
	// GetByEmployeeID returns ErrStreakNotFound when the employee has no row.
	GetByEmployeeID(ctx context.Context, employeeID string) (Streak, error)

	// GetForUpdate locks the employee's row for the rest of the enclosing
	// transaction. It returns nil, nil when there is no row yet.
	GetForUpdate(ctx context.Context, employeeID string) (*Streak, error)

	// Upsert writes the row keyed by employee_id.
	Upsert(ctx context.Context, s Streak) (Streak, error)

	List(ctx context.Context) ([]Streak, error)

	// ListByRange returns rows whose last_streak_date falls in [start, end].
	ListByRange(ctx context.Context, employeeID *string, start, end time.Time) ([]Streak, error)
}
