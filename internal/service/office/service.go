package office

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
)

type OfficeServiceImpl struct {
	office.PolicyRepository
	defaultTimezone string
}

// NewOfficeService returns an office.OfficeService. defaultTimezone is
// stored on policies created or updated without one.
func NewOfficeService(policyRepo office.PolicyRepository, defaultTimezone string) office.OfficeService {
	return &OfficeServiceImpl{
		PolicyRepository: policyRepo,
		defaultTimezone:  defaultTimezone,
	}
}

func (s *OfficeServiceImpl) toPolicy(req office.UpsertPolicyRequest) office.Policy {
	tz := req.Timezone
	if tz == "" {
		tz = s.defaultTimezone
	}
	return office.Policy{
		StartTime:       req.OfficeStartTime,
		EndTime:         req.OfficeEndTime,
		Location:        req.OfficeLocation,
		MonthlyRecapDay: req.MonthlyRecapDay,
		Timezone:        tz,
	}
}

// Get implements office.OfficeService.
func (s *OfficeServiceImpl) Get(ctx context.Context) (office.PolicyResponse, error) {
	p, err := s.PolicyRepository.Get(ctx)
	if err != nil {
		return office.PolicyResponse{}, err
	}
	return office.NewPolicyResponse(p), nil
}

// Create implements office.OfficeService.
func (s *OfficeServiceImpl) Create(ctx context.Context, req office.UpsertPolicyRequest) (office.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return office.PolicyResponse{}, err
	}

	created, err := s.PolicyRepository.Create(ctx, s.toPolicy(req))
	if err != nil {
		return office.PolicyResponse{}, err
	}

	slog.Info("Office settings created", "start", created.StartTime, "end", created.EndTime, "timezone", created.Timezone)
	return office.NewPolicyResponse(created), nil
}

// Update implements office.OfficeService.
func (s *OfficeServiceImpl) Update(ctx context.Context, req office.UpsertPolicyRequest) (office.PolicyResponse, error) {
	if err := req.Validate(); err != nil {
		return office.PolicyResponse{}, err
	}

	updated, err := s.PolicyRepository.Update(ctx, s.toPolicy(req))
	if err != nil {
		return office.PolicyResponse{}, err
	}

	slog.Info("Office settings updated", "start", updated.StartTime, "end", updated.EndTime, "timezone", updated.Timezone)
	return office.NewPolicyResponse(updated), nil
}

// Delete implements office.OfficeService.
func (s *OfficeServiceImpl) Delete(ctx context.Context) error {
	if err := s.PolicyRepository.Delete(ctx); err != nil {
		return err
	}
	slog.Warn("Office settings deleted; clock-in is disabled until new settings are created")
	return nil
}
