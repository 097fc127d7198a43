package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyClockedIn   = errors.New("you have already clocked in today")
	ErrPolicyMissing      = errors.New("office settings not found")
	ErrNoOpenClockIn      = errors.New("no clock-in record found for today or already clocked out")
	ErrNoClockOutToCancel = errors.New("no clock-out found today to cancel")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
