package errorlog

import (
	"context"
	"log/slog"
	"math"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
)

type ErrorLogServiceImpl struct {
	errorlog.ErrorLogRepository
}

func NewErrorLogService(repo errorlog.ErrorLogRepository) errorlog.ErrorLogService {
	return &ErrorLogServiceImpl{ErrorLogRepository: repo}
}

// Record implements errorlog.Recorder. The write outlives a cancelled
// request context and its failure is only logged.
func (s *ErrorLogServiceImpl) Record(ctx context.Context, errType string, err error, userID *string) {
	if err == nil {
		return
	}
	_, createErr := s.ErrorLogRepository.Create(context.WithoutCancel(ctx), errorlog.ErrorLog{
		ErrorMessage: err.Error(),
		ErrorType:    errType,
		UserID:       userID,
	})
	if createErr != nil {
		slog.Error("Failed to persist error log", "error_type", errType, "original_error", err, "error", createErr)
	}
}

// Create implements errorlog.ErrorLogService.
func (s *ErrorLogServiceImpl) Create(ctx context.Context, req errorlog.CreateErrorLogRequest) (errorlog.ErrorLogResponse, error) {
	if err := req.Validate(); err != nil {
		return errorlog.ErrorLogResponse{}, err
	}

	created, err := s.ErrorLogRepository.Create(ctx, errorlog.ErrorLog{
		ErrorMessage: req.ErrorMessage,
		ErrorType:    req.ErrorType,
		UserID:       req.UserID,
	})
	if err != nil {
		return errorlog.ErrorLogResponse{}, err
	}
	return errorlog.NewErrorLogResponse(created), nil
}

// GetByID implements errorlog.ErrorLogService.
func (s *ErrorLogServiceImpl) GetByID(ctx context.Context, id string) (errorlog.ErrorLogResponse, error) {
	l, err := s.ErrorLogRepository.GetByID(ctx, id)
	if err != nil {
		return errorlog.ErrorLogResponse{}, err
	}
	return errorlog.NewErrorLogResponse(l), nil
}

// List implements errorlog.ErrorLogService.
func (s *ErrorLogServiceImpl) List(ctx context.Context, filter errorlog.ListFilter) (errorlog.ListErrorLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return errorlog.ListErrorLogResponse{}, err
	}

	logs, total, err := s.ErrorLogRepository.List(ctx, filter)
	if err != nil {
		return errorlog.ListErrorLogResponse{}, err
	}

	responses := make([]errorlog.ErrorLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, errorlog.NewErrorLogResponse(l))
	}

	return errorlog.ListErrorLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		ErrorLogs:  responses,
	}, nil
}
