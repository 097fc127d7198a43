package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/office"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
)

type memAttendanceRepo struct {
	mu      sync.Mutex
	rows    map[string]attendance.Attendance
	seq     int
	failFor map[string]error
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{rows: map[string]attendance.Attendance{}, failFor: map[string]error{}}
}

func dayKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (m *memAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey(a.EmployeeID, a.Date)
	if _, ok := m.rows[key]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	m.seq++
	a.ID = fmt.Sprintf("att-%d", m.seq)
	m.rows[key] = a
	return a, nil
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failFor[employeeID]; err != nil {
		return nil, err
	}
	a, ok := m.rows[dayKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memAttendanceRepo) SetClockOut(_ context.Context, id string, clockOut *time.Time) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, a := range m.rows {
		if a.ID == id {
			a.ClockOut = clockOut
			m.rows[key] = a
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (m *memAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range m.rows {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	total := int64(len(out))
	start := (filter.Page - 1) * filter.Limit
	if start > len(out) {
		start = len(out)
	}
	end := min(start+filter.Limit, len(out))
	return out[start:end], total, nil
}

func (m *memAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []attendance.Attendance
	for _, a := range m.rows {
		if a.EmployeeID == employeeID && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) CreateAbsent(_ context.Context, employeeID string, date time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey(employeeID, date)
	if _, ok := m.rows[key]; ok {
		return false, nil
	}
	m.seq++
	m.rows[key] = attendance.Attendance{
		ID: fmt.Sprintf("att-%d", m.seq), EmployeeID: employeeID, Date: date, Status: attendance.StatusAbsent,
	}
	return true, nil
}

func (m *memAttendanceRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	byUser map[string]employee.Employee
}

func newMemEmployeeRepo(emps ...employee.Employee) *memEmployeeRepo {
	m := &memEmployeeRepo{byUser: map[string]employee.Employee{}}
	for _, e := range emps {
		m.byUser[e.UserID] = e
	}
	return m
}

func (m *memEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	e, ok := m.byUser[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *memEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.byUser {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memPolicyRepo struct {
	office.PolicyRepository
	policy *office.Policy
}

func (m *memPolicyRepo) Get(_ context.Context) (office.Policy, error) {
	if m.policy == nil {
		return office.Policy{}, office.ErrOfficePolicyNotFound
	}
	return *m.policy, nil
}

// memTracker applies streak.Advance to an in-memory map.
type memTracker struct {
	mu      sync.Mutex
	streaks map[string]streak.Streak
	calls   int
}

func newMemTracker() *memTracker {
	return &memTracker{streaks: map[string]streak.Streak{}}
}

func (m *memTracker) OnAttendanceEvaluated(_ context.Context, employeeID string, date time.Time, status attendance.Status) (streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	var prev *streak.Streak
	if s, ok := m.streaks[employeeID]; ok {
		prev = &s
	}
	next := streak.Advance(prev, employeeID, date, status)
	m.streaks[employeeID] = next
	return next, nil
}

type memLeaveRepo struct {
	leave.LeaveRequestRepository
	approved map[string]leave.LeaveRequest
}

func (m *memLeaveRepo) HasApprovedLeaveOn(_ context.Context, employeeID string, date time.Time) (bool, error) {
	lr, ok := m.approved[employeeID]
	return ok && lr.Covers(date), nil
}

// passthroughTx runs fn directly; the fakes have no transactions.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordedError struct {
	errType string
	err     error
}

type memRecorder struct {
	mu      sync.Mutex
	records []recordedError
}

func (m *memRecorder) Record(_ context.Context, errType string, err error, _ *string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, recordedError{errType: errType, err: err})
}
