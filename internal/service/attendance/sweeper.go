package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"golang.org/x/sync/errgroup"
)

// sweepConcurrency bounds how many employees are checked at once.
const sweepConcurrency = 8

type AbsenceSweeperImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	leave.LeaveRequestRepository
	office.PolicyRepository
	recorder errorlog.Recorder
	now      func() time.Time
}

func NewAbsenceSweeper(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
	policyRepo office.PolicyRepository,
	recorder errorlog.Recorder,
) attendance.AbsenceSweeper {
	return &AbsenceSweeperImpl{
		AttendanceRepository:   attendanceRepo,
		EmployeeRepository:     employeeRepo,
		LeaveRequestRepository: leaveRepo,
		PolicyRepository:       policyRepo,
		recorder:               recorder,
		now:                    time.Now,
	}
}

// Today implements attendance.AbsenceSweeper.
func (s *AbsenceSweeperImpl) Today(ctx context.Context) (time.Time, error) {
	p, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, office.ErrOfficePolicyNotFound) {
			return time.Time{}, attendance.ErrPolicyMissing
		}
		return time.Time{}, err
	}
	loc, err := p.Loc()
	if err != nil {
		return time.Time{}, err
	}
	return office.LocalDate(s.now(), loc), nil
}

type sweepOutcome int

const (
	outcomeMarked sweepOutcome = iota
	outcomeSkipped
)

// SweepAbsences implements attendance.AbsenceSweeper. A failure for one
// employee is logged and recorded; the rest of the batch still runs.
func (s *AbsenceSweeperImpl) SweepAbsences(ctx context.Context, date time.Time) (attendance.SweepResponse, error) {
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return attendance.SweepResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	resp := attendance.SweepResponse{Date: date.Format("2006-01-02"), Checked: len(employees)}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(sweepConcurrency)
	for _, emp := range employees {
		g.Go(func() error {
			outcome, err := s.sweepEmployee(gCtx, emp.ID, date)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				resp.Failed++
				slog.Error("Failed to sweep absence for employee", "employee_id", emp.ID, "date", resp.Date, "error", err)
				s.recorder.Record(gCtx, "absence_sweep", fmt.Errorf("employee %s on %s: %w", emp.ID, resp.Date, err), nil)
			case outcome == outcomeMarked:
				resp.MarkedAbsent++
			default:
				resp.Skipped++
			}
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("Absence sweep finished",
		"date", resp.Date,
		"checked", resp.Checked,
		"marked_absent", resp.MarkedAbsent,
		"skipped", resp.Skipped,
		"failed", resp.Failed,
	)
	return resp, nil
}

func (s *AbsenceSweeperImpl) sweepEmployee(ctx context.Context, employeeID string, date time.Time) (sweepOutcome, error) {
	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return outcomeSkipped, nil
	}

	onLeave, err := s.LeaveRequestRepository.HasApprovedLeaveOn(ctx, employeeID, date)
	if err != nil {
		return 0, err
	}
	if onLeave {
		return outcomeSkipped, nil
	}

	// A clock-in racing the sweep wins: the insert is a no-op on conflict.
	written, err := s.AttendanceRepository.CreateAbsent(ctx, employeeID, date)
	if err != nil {
		return 0, err
	}
	if !written {
		return outcomeSkipped, nil
	}
	return outcomeMarked, nil
}
