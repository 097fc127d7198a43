package office

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type UpsertPolicyRequest struct {
	OfficeStartTime string `json:"office_start_time"`
	OfficeEndTime   string `json:"office_end_time"`
	OfficeLocation  string `json:"office_location"`
	MonthlyRecapDay int    `json:"monthly_recap_day"`
	Timezone        string `json:"timezone,omitempty"`
}

// Validate checks the request. An empty Timezone is allowed; the service
// fills in the configured default.
func (r *UpsertPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	startOK := validator.IsValidClock(r.OfficeStartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "office_start_time",
			Message: "office_start_time must be a 24h time in HH:MM format",
		})
	}

	endOK := validator.IsValidClock(r.OfficeEndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "office_end_time",
			Message: "office_end_time must be a 24h time in HH:MM format",
		})
	}

	// Zero-padded HH:MM strings order lexically.
	if startOK && endOK && r.OfficeEndTime <= r.OfficeStartTime {
		errs = append(errs, validator.ValidationError{
			Field:   "office_end_time",
			Message: "office_end_time must be after office_start_time",
		})
	}

	if validator.IsEmpty(r.OfficeLocation) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_location",
			Message: "office_location is required",
		})
	} else if len(r.OfficeLocation) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "office_location",
			Message: "office_location must not exceed 255 characters",
		})
	}

	if r.MonthlyRecapDay < 1 || r.MonthlyRecapDay > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_recap_day",
			Message: "monthly_recap_day must be between 1 and 31",
		})
	}

	if r.Timezone != "" && !validator.IsValidTimezone(r.Timezone) {
		errs = append(errs, validator.ValidationError{
			Field:   "timezone",
			Message: "timezone must be a valid IANA timezone, e.g. Asia/Jakarta",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	ID              string `json:"id"`
	OfficeStartTime string `json:"office_start_time"`
	OfficeEndTime   string `json:"office_end_time"`
	OfficeLocation  string `json:"office_location"`
	MonthlyRecapDay int    `json:"monthly_recap_day"`
	Timezone        string `json:"timezone"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

func NewPolicyResponse(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:              p.ID,
		OfficeStartTime: p.StartTime,
		OfficeEndTime:   p.EndTime,
		OfficeLocation:  p.Location,
		MonthlyRecapDay: p.MonthlyRecapDay,
		Timezone:        p.Timezone,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       p.UpdatedAt.Format(time.RFC3339),
	}
}
