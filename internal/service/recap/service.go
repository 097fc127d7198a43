package recap

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/recap"
	"golang.org/x/sync/errgroup"
)

const generateConcurrency = 8

type RecapServiceImpl struct {
	recap.RecapRepository
	attendance.AttendanceRepository
	employee.EmployeeRepository
	recorder errorlog.Recorder
}

func NewRecapService(
	recapRepo recap.RecapRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	recorder errorlog.Recorder,
) recap.RecapService {
	return &RecapServiceImpl{
		RecapRepository:      recapRepo,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		recorder:             recorder,
	}
}

// Generate implements recap.RecapService. Totals are recomputed from the
// attendance rows and overwrite any stored recap for the period.
func (s *RecapServiceImpl) Generate(ctx context.Context, req recap.GenerateRequest) (recap.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return recap.GenerateResponse{}, err
	}

	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return recap.GenerateResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	from, to := recap.PeriodBounds(req.Month, req.Year)
	resp := recap.GenerateResponse{Month: req.Month, Year: req.Year}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(generateConcurrency)
	for _, emp := range employees {
		g.Go(func() error {
			err := s.generateFor(gCtx, emp.ID, req.Month, req.Year, from, to)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				resp.Failed++
				slog.Error("Failed to generate recap for employee",
					"employee_id", emp.ID, "month", req.Month, "year", req.Year, "error", err)
				s.recorder.Record(gCtx, "monthly_recap",
					fmt.Errorf("employee %s for %04d-%02d: %w", emp.ID, req.Year, req.Month, err), nil)
				return nil
			}
			resp.Processed++
			return nil
		})
	}
	_ = g.Wait()

	slog.Info("Monthly recap generated",
		"month", req.Month, "year", req.Year, "processed", resp.Processed, "failed", resp.Failed)
	return resp, nil
}

func (s *RecapServiceImpl) generateFor(ctx context.Context, employeeID string, month, year int, from, to time.Time) error {
	records, err := s.AttendanceRepository.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return err
	}
	_, err = s.RecapRepository.Upsert(ctx, recap.Fold(employeeID, month, year, records))
	return err
}

// List implements recap.RecapService.
func (s *RecapServiceImpl) List(ctx context.Context, filter recap.ListFilter) ([]recap.RecapResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.RecapRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list recaps: %w", err)
	}

	responses := make([]recap.RecapResponse, 0, len(rows))
	for _, r := range rows {
		responses = append(responses, recap.NewRecapResponse(r))
	}
	return responses, nil
}
