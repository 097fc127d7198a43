package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/lock"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	office.PolicyRepository
	tracker streak.Tracker
	tx      database.Transactor
	locker  lock.Locker
	now     func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policyRepo office.PolicyRepository,
	tracker streak.Tracker,
	tx database.Transactor,
	locker lock.Locker,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		PolicyRepository:     policyRepo,
		tracker:              tracker,
		tx:                   tx,
		locker:               locker,
		now:                  time.Now,
	}
}

// policy loads the office policy, failing closed when none exists.
func (a *AttendanceServiceImpl) policy(ctx context.Context) (office.Policy, error) {
	p, err := a.PolicyRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, office.ErrOfficePolicyNotFound) {
			return office.Policy{}, attendance.ErrPolicyMissing
		}
		return office.Policy{}, fmt.Errorf("failed to get office settings: %w", err)
	}
	return p, nil
}

func (a *AttendanceServiceImpl) today(ctx context.Context, now time.Time) (time.Time, error) {
	p, err := a.policy(ctx)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := p.Loc()
	if err != nil {
		return time.Time{}, err
	}
	return office.LocalDate(now, loc), nil
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, userID string) (attendance.ClockInResponse, error) {
	now := a.now()

	emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	p, err := a.policy(ctx)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	eval, err := attendance.Evaluate(now, p)
	if err != nil {
		return attendance.ClockInResponse{}, fmt.Errorf("failed to evaluate clock-in: %w", err)
	}

	unlock, err := a.locker.Lock(ctx, lock.EmployeeKey(emp.ID))
	if err != nil {
		return attendance.ClockInResponse{}, err
	}
	defer unlock()

	var (
		created attendance.Attendance
		st      streak.Streak
	)
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, eval.Date)
		if err != nil {
			return err
		}
		if existing != nil {
			return attendance.ErrAlreadyClockedIn
		}

		st, err = a.tracker.OnAttendanceEvaluated(ctx, emp.ID, eval.Date, eval.Status)
		if err != nil {
			return err
		}

		created, err = a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID:    emp.ID,
			Date:          eval.Date,
			ClockIn:       &now,
			Status:        eval.Status,
			StreakUpdated: true,
		})
		return err
	})
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	slog.Info("Clock-in recorded",
		"employee_id", emp.ID,
		"date", eval.Date.Format("2006-01-02"),
		"status", eval.Status,
		"current_streak", st.CurrentStreak,
	)

	created.EmployeeName = &emp.FullName
	return attendance.ClockInResponse{
		AttendanceResponse: attendance.NewAttendanceResponse(created),
		CurrentStreak:      st.CurrentStreak,
		LongestStreak:      st.LongestStreak,
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	now := a.now()
	return a.withTodayRecord(ctx, userID, now, func(ctx context.Context, rec *attendance.Attendance) (attendance.Attendance, error) {
		if rec == nil || rec.ClockIn == nil || rec.ClockOut != nil {
			return attendance.Attendance{}, attendance.ErrNoOpenClockIn
		}
		return a.AttendanceRepository.SetClockOut(ctx, rec.ID, &now)
	})
}

// CancelClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CancelClockOut(ctx context.Context, userID string) (attendance.AttendanceResponse, error) {
	return a.withTodayRecord(ctx, userID, a.now(), func(ctx context.Context, rec *attendance.Attendance) (attendance.Attendance, error) {
		if rec == nil || rec.ClockOut == nil {
			return attendance.Attendance{}, attendance.ErrNoClockOutToCancel
		}
		return a.AttendanceRepository.SetClockOut(ctx, rec.ID, nil)
	})
}

// withTodayRecord runs fn on the caller's record for today under the
// employee lock and one transaction.
func (a *AttendanceServiceImpl) withTodayRecord(
	ctx context.Context,
	userID string,
	now time.Time,
	fn func(ctx context.Context, rec *attendance.Attendance) (attendance.Attendance, error),
) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := a.today(ctx, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	unlock, err := a.locker.Lock(ctx, lock.EmployeeKey(emp.ID))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	defer unlock()

	var updated attendance.Attendance
	err = a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return err
		}
		updated, err = fn(ctx, rec)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated.EmployeeName = &emp.FullName
	return attendance.NewAttendanceResponse(updated), nil
}

// GetStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetStatus(ctx context.Context, userID string) (attendance.StatusResponse, error) {
	emp, err := a.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	date, err := a.today(ctx, a.now())
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	resp := attendance.StatusResponse{
		Date:   date.Format("2006-01-02"),
		Status: attendance.DayStatusNoClockIn,
	}
	if rec != nil {
		resp.Status = rec.DayStatus()
		r := attendance.NewAttendanceResponse(*rec)
		resp.Attendance = &r
	}
	return resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetHistory(ctx context.Context, filter attendance.HistoryFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByUserID(ctx, filter.UserID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.ListByEmployee(ctx, emp.ID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewAttendanceResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  int(math.Ceil(float64(total) / float64(filter.Limit))),
		Attendances: responses,
	}, nil
}
