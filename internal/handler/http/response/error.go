package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. It reports true when err
// matched nothing and was answered with a 500.
func HandleError(w http.ResponseWriter, err error) (unexpected bool) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return false
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrMissingToken):
		Unauthorized(w, "Missing authentication token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Office settings
	case errors.Is(err, office.ErrOfficePolicyNotFound),
		errors.Is(err, attendance.ErrPolicyMissing):
		NotFound(w, "Office settings not found")
	case errors.Is(err, office.ErrOfficePolicyExists):
		Conflict(w, "Office settings already exist")

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "You have already clocked in today")
	case errors.Is(err, attendance.ErrNoOpenClockIn):
		Conflict(w, "No clock-in record found for today or already clocked out")
	case errors.Is(err, attendance.ErrNoClockOutToCancel):
		Conflict(w, "No clock-out found today to cancel")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, lock.ErrLockTimeout):
		Conflict(w, "Another attendance update is in progress, please retry")

	// Streak
	case errors.Is(err, streak.ErrStreakNotFound):
		NotFound(w, "Streak not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "A leave request already exists in this date range")
	case errors.Is(err, leave.ErrNotApprover):
		Forbidden(w, "Only the assigned manager can process this leave request")
	case errors.Is(err, leave.ErrNoApproverAssigned):
		BadRequest(w, "No manager assigned to approve your leave requests", nil)

	// Error log
	case errors.Is(err, errorlog.ErrErrorLogNotFound):
		NotFound(w, "Error log not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
		return true
	}
	return false
}
