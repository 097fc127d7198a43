package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// DayStatus is the caller-facing view of today's record.
type DayStatus string

const (
	DayStatusNoClockIn  DayStatus = "no_clock_in"
	DayStatusClockedIn  DayStatus = "clocked_in"
	DayStatusClockedOut DayStatus = "clocked_out"
)

// Attendance is keyed by (EmployeeID, Date). Date is the office-local
// calendar day stored as a UTC midnight.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       *time.Time
	ClockOut      *time.Time
	Status        Status
	StreakUpdated bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}

// WorkHours is clock-out minus clock-in in fractional hours, or zero while
// either side is missing.
func (a Attendance) WorkHours() float64 {
	if a.ClockIn == nil || a.ClockOut == nil {
		return 0
	}
	return a.ClockOut.Sub(*a.ClockIn).Hours()
}

func (a Attendance) DayStatus() DayStatus {
	switch {
	case a.ClockIn == nil:
		return DayStatusNoClockIn
	case a.ClockOut == nil:
		return DayStatusClockedIn
	default:
		return DayStatusClockedOut
	}
}

// RoundHours rounds fractional hours to two decimals for display.
func RoundHours(h float64) float64 {
	f, _ := decimal.NewFromFloat(h).Round(2).Float64()
	return f
}
