package recap

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
)

// Recap is one employee's attendance summary for a calendar month.
type Recap struct {
	ID               string
	EmployeeID       string
	Month            int
	Year             int
	TotalDaysPresent int
	TotalDaysAbsent  int
	TotalDaysLate    int
	TotalWorkHours   float64
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO / Join
	EmployeeName *string
}

// PeriodBounds returns [first day of month, first day of next month).
func PeriodBounds(month, year int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// Fold summarises one employee's records for a period. Work hours only
// count days with both clock-in and clock-out.
func Fold(employeeID string, month, year int, records []attendance.Attendance) Recap {
	r := Recap{EmployeeID: employeeID, Month: month, Year: year}
	for _, a := range records {
		switch a.Status {
		case attendance.StatusPresent:
			r.TotalDaysPresent++
		case attendance.StatusAbsent:
			r.TotalDaysAbsent++
		case attendance.StatusLate:
			r.TotalDaysLate++
		}
		r.TotalWorkHours += a.WorkHours()
	}
	return r
}
