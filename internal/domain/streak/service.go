package streak

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
)

// Tracker advances an employee's streak after a clock-in evaluation.
// Callers run it inside the same transaction that writes the attendance row.
type Tracker interface {
	OnAttendanceEvaluated(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (Streak, error)
}

type StreakService interface {
	Tracker

	GetMine(ctx context.Context, userID string) (StreakResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (StreakResponse, error)
	List(ctx context.Context) ([]StreakResponse, error)
	ListByRange(ctx context.Context, filter RangeFilter) ([]StreakResponse, error)
	Reset(ctx context.Context, req ResetStreakRequest) (StreakResponse, error)
}
