package streak

import (
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
)

// Well-known reset reasons. Admin resets record the caller's free-form
// label verbatim, so ResetReason is a plain string.
const (
	ResetReasonNone   = "none"
	ResetReasonLate   = "late"
	ResetReasonManual = "manual"
	ResetReasonAdmin  = "admin"
)

// Streak holds one employee's consecutive on-time counters.
// LongestStreak >= CurrentStreak always holds.
type Streak struct {
	ID             string
	EmployeeID     string
	CurrentStreak  int
	LongestStreak  int
	LastStreakDate *time.Time
	ResetReason    string
	LastResetDate  *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO / Join
	EmployeeName *string
}

// Advance applies one clock-in evaluation for date to prev (nil when the
// employee has no streak yet) and returns the new state.
//
// A present day continues the streak only when the last streak date is
// exactly the previous calendar day; anything else starts over at 1.
// A late day zeroes the current streak and keeps the longest.
func Advance(prev *Streak, employeeID string, date time.Time, status attendance.Status) Streak {
	next := Streak{EmployeeID: employeeID, ResetReason: ResetReasonNone}
	if prev != nil {
		next = *prev
	}

	switch status {
	case attendance.StatusPresent:
		if next.LastStreakDate != nil && next.LastStreakDate.AddDate(0, 0, 1).Equal(date) {
			next.CurrentStreak++
		} else {
			next.CurrentStreak = 1
		}
		if next.CurrentStreak > next.LongestStreak {
			next.LongestStreak = next.CurrentStreak
		}
		next.ResetReason = ResetReasonNone
	case attendance.StatusLate:
		next.CurrentStreak = 0
		next.ResetReason = ResetReasonLate
		next.LastResetDate = &date
	default:
		return next
	}

	next.LastStreakDate = &date
	return next
}

// Reset zeroes the current streak with a caller-supplied reason. The
// longest streak and last streak date are kept.
func (s Streak) Reset(reason string, at time.Time) Streak {
	s.CurrentStreak = 0
	s.ResetReason = reason
	s.LastResetDate = &at
	return s
}
