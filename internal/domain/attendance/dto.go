package attendance

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	ClockInTime   *string  `json:"clock_in_time,omitempty"`
	ClockOutTime  *string  `json:"clock_out_time,omitempty"`
	WorkHours     *float64 `json:"work_hours,omitempty"`
	Status        string   `json:"status"`
	StreakUpdated bool     `json:"streak_updated"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		StreakUpdated: a.StreakUpdated,
	}
	if a.ClockIn != nil {
		s := a.ClockIn.Format(time.RFC3339)
		resp.ClockInTime = &s
	}
	if a.ClockOut != nil {
		s := a.ClockOut.Format(time.RFC3339)
		resp.ClockOutTime = &s
		h := RoundHours(a.WorkHours())
		resp.WorkHours = &h
	}
	return resp
}

type ClockInResponse struct {
	AttendanceResponse
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

type StatusResponse struct {
	Date       string              `json:"date"`
	Status     DayStatus           `json:"status"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type HistoryFilter struct {
	UserID    string  `json:"-"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
	Status    *string `json:"status,omitempty"`
	Page      int     `json:"page"`
	Limit     int     `json:"limit"`
}

func (f *HistoryFilter) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	var startOK, endOK bool
	if f.StartDate != nil {
		if start, startOK = validator.IsValidDate(*f.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if end, endOK = validator.IsValidDate(*f.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{
		string(StatusPresent), string(StatusLate), string(StatusAbsent),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, late, absent",
		})
	}

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Attendances []AttendanceResponse `json:"attendances"`
}

type SweepRequest struct {
	Date *string `json:"date,omitempty"`
}

func (r *SweepRequest) Validate() error {
	if r.Date == nil {
		return nil
	}
	if _, ok := validator.IsValidDate(*r.Date); !ok {
		return validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}
	return nil
}

type SweepResponse struct {
	Date         string `json:"date"`
	Checked      int    `json:"checked"`
	MarkedAbsent int    `json:"marked_absent"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
}
