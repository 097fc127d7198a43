package streak

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/lock"
)

type StreakServiceImpl struct {
	streak.StreakRepository
	employee.EmployeeRepository
	tx     database.Transactor
	locker lock.Locker
	now    func() time.Time
}

func NewStreakService(
	streakRepo streak.StreakRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.Transactor,
	locker lock.Locker,
) streak.StreakService {
	return &StreakServiceImpl{
		StreakRepository:   streakRepo,
		EmployeeRepository: employeeRepo,
		tx:                 tx,
		locker:             locker,
		now:                time.Now,
	}
}

// OnAttendanceEvaluated implements streak.Tracker. The caller holds the
// employee lock and the enclosing transaction; the row lock taken here
// keeps the read-modify-write atomic across instances too.
func (s *StreakServiceImpl) OnAttendanceEvaluated(ctx context.Context, employeeID string, date time.Time, status attendance.Status) (streak.Streak, error) {
	var saved streak.Streak
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		prev, err := s.StreakRepository.GetForUpdate(ctx, employeeID)
		if err != nil {
			return err
		}

		next := streak.Advance(prev, employeeID, date, status)
		saved, err = s.StreakRepository.Upsert(ctx, next)
		return err
	})
	if err != nil {
		return streak.Streak{}, fmt.Errorf("failed to advance streak: %w", err)
	}
	return saved, nil
}

// GetMine implements streak.StreakService.
func (s *StreakServiceImpl) GetMine(ctx context.Context, userID string) (streak.StreakResponse, error) {
	emp, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return streak.StreakResponse{}, err
	}
	return s.GetByEmployeeID(ctx, emp.ID)
}

// GetByEmployeeID implements streak.StreakService.
func (s *StreakServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (streak.StreakResponse, error) {
	st, err := s.StreakRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return streak.StreakResponse{}, err
	}
	return streak.NewStreakResponse(st), nil
}

// List implements streak.StreakService.
func (s *StreakServiceImpl) List(ctx context.Context) ([]streak.StreakResponse, error) {
	streaks, err := s.StreakRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	return streak.NewStreakResponses(streaks), nil
}

// ListByRange implements streak.StreakService.
func (s *StreakServiceImpl) ListByRange(ctx context.Context, filter streak.RangeFilter) ([]streak.StreakResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	streaks, err := s.StreakRepository.ListByRange(ctx, filter.EmployeeID, filter.Start, filter.End)
	if err != nil {
		return nil, err
	}
	return streak.NewStreakResponses(streaks), nil
}

// Reset implements streak.StreakService.
func (s *StreakServiceImpl) Reset(ctx context.Context, req streak.ResetStreakRequest) (streak.StreakResponse, error) {
	if err := req.Validate(); err != nil {
		return streak.StreakResponse{}, err
	}

	unlock, err := s.locker.Lock(ctx, lock.EmployeeKey(req.EmployeeID))
	if err != nil {
		return streak.StreakResponse{}, err
	}
	defer unlock()

	var saved streak.Streak
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		prev, err := s.StreakRepository.GetForUpdate(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if prev == nil {
			return streak.ErrStreakNotFound
		}

		saved, err = s.StreakRepository.Upsert(ctx, prev.Reset(req.ResetReason, s.now()))
		return err
	})
	if err != nil {
		return streak.StreakResponse{}, err
	}

	slog.Info("Streak reset", "employee_id", req.EmployeeID, "reason", req.ResetReason)
	return streak.NewStreakResponse(saved), nil
}
