package errorlog

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type CreateErrorLogRequest struct {
	ErrorMessage string  `json:"error_message"`
	ErrorType    string  `json:"error_type"`
	UserID       *string `json:"user_id,omitempty"`
}

func (r *CreateErrorLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ErrorMessage) {
		errs = append(errs, validator.ValidationError{
			Field:   "error_message",
			Message: "error_message is required",
		})
	}
	if validator.IsEmpty(r.ErrorType) {
		errs = append(errs, validator.ValidationError{
			Field:   "error_type",
			Message: "error_type is required",
		})
	} else if len(r.ErrorType) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "error_type",
			Message: "error_type must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListFilter struct {
	ErrorType *string `json:"error_type,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

func (f *ListFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		return validator.ValidationErrors{{
			Field:   "limit",
			Message: "limit must not exceed 200",
		}}
	}
	return nil
}

type ErrorLogResponse struct {
	ID             string  `json:"id"`
	ErrorMessage   string  `json:"error_message"`
	ErrorType      string  `json:"error_type"`
	ErrorTimestamp string  `json:"error_timestamp"`
	UserID         *string `json:"user_id,omitempty"`
	UserEmail      *string `json:"user_email,omitempty"`
}

func NewErrorLogResponse(l ErrorLog) ErrorLogResponse {
	return ErrorLogResponse{
		ID:             l.ID,
		ErrorMessage:   l.ErrorMessage,
		ErrorType:      l.ErrorType,
		ErrorTimestamp: l.ErrorTimestamp.Format(time.RFC3339),
		UserID:         l.UserID,
		UserEmail:      l.UserEmail,
	}
}

type ListErrorLogResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	ErrorLogs  []ErrorLogResponse `json:"error_logs"`
}
