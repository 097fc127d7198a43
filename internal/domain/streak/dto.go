package streak

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type ResetStreakRequest struct {
	EmployeeID  string `json:"-"`
	ResetReason string `json:"reset_reason"`
}

func (r *ResetStreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.ResetReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reset_reason",
			Message: "reset_reason is required",
		})
	} else if len(r.ResetReason) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "reset_reason",
			Message: "reset_reason must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeFilter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`

	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

// Validate parses StartDate and EndDate into Start and End.
func (f *RangeFilter) Validate() error {
	var errs validator.ValidationErrors

	var startOK, endOK bool
	if f.Start, startOK = validator.IsValidDate(f.StartDate); !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required in YYYY-MM-DD format",
		})
	}
	if f.End, endOK = validator.IsValidDate(f.EndDate); !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && f.End.Before(f.Start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StreakResponse struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   *string `json:"employee_name,omitempty"`
	CurrentStreak  int     `json:"current_streak"`
	LongestStreak  int     `json:"longest_streak"`
	LastStreakDate *string `json:"last_streak_date,omitempty"`
	ResetReason    string  `json:"reset_reason"`
	LastResetDate  *string `json:"last_reset_date,omitempty"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewStreakResponse(s Streak) StreakResponse {
	resp := StreakResponse{
		EmployeeID:    s.EmployeeID,
		EmployeeName:  s.EmployeeName,
		CurrentStreak: s.CurrentStreak,
		LongestStreak: s.LongestStreak,
		ResetReason:   s.ResetReason,
		UpdatedAt:     s.UpdatedAt.Format(time.RFC3339),
	}
	if s.LastStreakDate != nil {
		d := s.LastStreakDate.Format("2006-01-02")
		resp.LastStreakDate = &d
	}
	if s.LastResetDate != nil {
		d := s.LastResetDate.Format(time.RFC3339)
		resp.LastResetDate = &d
	}
	return resp
}

func NewStreakResponses(streaks []Streak) []StreakResponse {
	out := make([]StreakResponse, 0, len(streaks))
	for _, s := range streaks {
		out = append(out, NewStreakResponse(s))
	}
	return out
}
