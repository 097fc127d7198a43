package recap

import (
	"fmt"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/export"
)

// Table lays recap rows out for CSV/XLSX export.
func Table(label string, rows []RecapResponse) export.Table {
	t := export.Table{
		Title: "Attendance Recap " + label,
		Headers: []string{
			"Employee ID", "Employee Name", "Period",
			"Days Present", "Days Late", "Days Absent", "Work Hours",
		},
		Rows: make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{
			r.EmployeeID,
			r.EmployeeName,
			fmt.Sprintf("%04d-%02d", r.Year, r.Month),
			r.TotalDaysPresent,
			r.TotalDaysLate,
			r.TotalDaysAbsent,
			r.TotalWorkHours,
		})
	}
	return t
}
