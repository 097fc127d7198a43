package recap

import (
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type GenerateRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 9999",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateResponse struct {
	Month     int `json:"month"`
	Year      int `json:"year"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// ListFilter selects a single month (Month/Year) or an inclusive range of
// months (Start/End as YYYY-MM). Validate resolves either form into the
// From*/To* fields.
type ListFilter struct {
	Month      string  `json:"month,omitempty"`
	Year       string  `json:"year,omitempty"`
	Start      string  `json:"start,omitempty"`
	End        string  `json:"end,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	Format     Format  `json:"format,omitempty"`

	FromYear, FromMonth int `json:"-"`
	ToYear, ToMonth     int `json:"-"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case f.Start != "" || f.End != "":
		start, startOK := validator.IsValidYearMonth(f.Start)
		if !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be in YYYY-MM format",
			})
		}
		end, endOK := validator.IsValidYearMonth(f.End)
		if !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be in YYYY-MM format",
			})
		}
		if startOK && endOK {
			if end.Before(start) {
				errs = append(errs, validator.ValidationError{
					Field:   "end",
					Message: "end must not be before start",
				})
			}
			f.FromYear, f.FromMonth = start.Year(), int(start.Month())
			f.ToYear, f.ToMonth = end.Year(), int(end.Month())
		}
	default:
		month, err := strconv.Atoi(f.Month)
		if err != nil || month < 1 || month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		year, err := strconv.Atoi(f.Year)
		if err != nil || year < 2000 || year > 9999 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be between 2000 and 9999",
			})
		}
		f.FromYear, f.FromMonth = year, month
		f.ToYear, f.ToMonth = year, month
	}

	if f.Format == "" {
		f.Format = FormatJSON
	}
	if !validator.IsInSlice(string(f.Format), []string{string(FormatJSON), string(FormatCSV), string(FormatXLSX)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: json, csv, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Label names the selected period, e.g. "2024-06" or "2024-01_2024-06".
func (f *ListFilter) Label() string {
	from := fmt.Sprintf("%04d-%02d", f.FromYear, f.FromMonth)
	to := fmt.Sprintf("%04d-%02d", f.ToYear, f.ToMonth)
	if from == to {
		return from
	}
	return from + "_" + to
}

type RecapResponse struct {
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	Month            int     `json:"month"`
	Year             int     `json:"year"`
	TotalDaysPresent int     `json:"total_days_present"`
	TotalDaysAbsent  int     `json:"total_days_absent"`
	TotalDaysLate    int     `json:"total_days_late"`
	TotalWorkHours   float64 `json:"total_work_hours"`
}

func NewRecapResponse(r Recap) RecapResponse {
	resp := RecapResponse{
		EmployeeID:       r.EmployeeID,
		Month:            r.Month,
		Year:             r.Year,
		TotalDaysPresent: r.TotalDaysPresent,
		TotalDaysAbsent:  r.TotalDaysAbsent,
		TotalDaysLate:    r.TotalDaysLate,
		TotalWorkHours:   attendance.RoundHours(r.TotalWorkHours),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	return resp
}
