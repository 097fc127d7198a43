package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/recap"
)

// AttendanceJobs runs the end-of-day absence sweep and the monthly recap.
// Both re-read the office policy on every tick, so a settings change takes
// effect from the next tick.
type AttendanceJobs struct {
	policyRepo   office.PolicyRepository
	sweeper      attendance.AbsenceSweeper
	recapService recap.RecapService
	now          func() time.Time

	mu        sync.Mutex
	lastSweep time.Time // office-local date of the last completed sweep
	lastRecap string    // YYYY-MM of the month whose recap day last fired
}

func NewAttendanceJobs(
	policyRepo office.PolicyRepository,
	sweeper attendance.AbsenceSweeper,
	recapService recap.RecapService,
) *AttendanceJobs {
	return &AttendanceJobs{
		policyRepo:   policyRepo,
		sweeper:      sweeper,
		recapService: recapService,
		now:          time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, tick time.Duration) {
	scheduler.AddJob("sweep_absences", tick, j.SweepAbsences)
	scheduler.AddJob("monthly_recap", tick, j.MonthlyRecap)
}

// SweepAbsences fires once per office-local date, on the first tick at or
// after office_end_time.
func (j *AttendanceJobs) SweepAbsences(ctx context.Context) error {
	policy, loc, ok, err := j.policy(ctx, "absence sweep")
	if !ok {
		return err
	}

	now := j.now()
	today := office.LocalDate(now, loc)

	j.mu.Lock()
	done := j.lastSweep.Equal(today)
	j.mu.Unlock()
	if done {
		return nil
	}

	end, err := policy.EndOn(today, loc)
	if err != nil {
		return fmt.Errorf("failed to resolve office end time: %w", err)
	}
	if now.Before(end) {
		return nil
	}

	slog.Info("Cron: Starting absence sweep", "date", today.Format("2006-01-02"))

	result, err := j.sweeper.SweepAbsences(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to sweep absences: %w", err)
	}

	j.mu.Lock()
	j.lastSweep = today
	j.mu.Unlock()

	slog.Info("Cron: Absence sweep completed",
		"date", result.Date,
		"checked", result.Checked,
		"marked_absent", result.MarkedAbsent,
		"skipped", result.Skipped,
		"failed", result.Failed,
	)
	return nil
}

// MonthlyRecap fires once on the policy's recap day (clamped to the month
// length) and recaps the local month containing that day.
func (j *AttendanceJobs) MonthlyRecap(ctx context.Context) error {
	policy, loc, ok, err := j.policy(ctx, "monthly recap")
	if !ok {
		return err
	}

	local := j.now().In(loc)
	if local.Day() != policy.RecapDayIn(local.Year(), local.Month()) {
		return nil
	}

	key := local.Format("2006-01")
	j.mu.Lock()
	done := j.lastRecap == key
	j.mu.Unlock()
	if done {
		return nil
	}

	month, year := int(local.Month()), local.Year()
	slog.Info("Cron: Starting monthly recap", "month", month, "year", year)

	result, err := j.recapService.Generate(ctx, recap.GenerateRequest{Month: month, Year: year})
	if err != nil {
		return fmt.Errorf("failed to generate recap: %w", err)
	}

	j.mu.Lock()
	j.lastRecap = key
	j.mu.Unlock()

	slog.Info("Cron: Monthly recap completed",
		"month", result.Month,
		"year", result.Year,
		"processed", result.Processed,
		"failed", result.Failed,
	)
	return nil
}

// policy loads the office policy. ok is false when the job should not run;
// a missing policy is a logged no-op rather than an error.
func (j *AttendanceJobs) policy(ctx context.Context, job string) (office.Policy, *time.Location, bool, error) {
	policy, err := j.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, office.ErrOfficePolicyNotFound) {
			slog.Info("Cron: No office settings configured, skipping " + job)
			return office.Policy{}, nil, false, nil
		}
		return office.Policy{}, nil, false, fmt.Errorf("failed to get office settings: %w", err)
	}

	loc, err := policy.Loc()
	if err != nil {
		return office.Policy{}, nil, false, err
	}
	return policy, loc, true, nil
}
