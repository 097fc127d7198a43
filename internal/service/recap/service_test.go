package recap

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/recap"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecapRepo struct {
	mu   sync.Mutex
	rows map[string]recap.Recap
}

func (m *memRecapRepo) Upsert(_ context.Context, r recap.Recap) (recap.Recap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[r.EmployeeID] = r
	return r, nil
}

func (m *memRecapRepo) List(_ context.Context, filter recap.ListFilter) ([]recap.Recap, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []recap.Recap
	for _, r := range m.rows {
		period := r.Year*12 + r.Month
		if period >= filter.FromYear*12+filter.FromMonth && period <= filter.ToYear*12+filter.ToMonth {
			out = append(out, r)
		}
	}
	return out, nil
}

type memAttendanceRepo struct {
	attendance.AttendanceRepository
	rows    map[string][]attendance.Attendance
	failFor string
}

func (m *memAttendanceRepo) ListByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	if employeeID == m.failFor {
		return nil, errors.New("malformed row")
	}
	var out []attendance.Attendance
	for _, a := range m.rows[employeeID] {
		if !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
	all []employee.Employee
}

func (m *memEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range m.all {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memEmployeeRepo) ListAll(_ context.Context) ([]employee.Employee, error) {
	return m.all, nil
}

type memRecorder struct {
	mu    sync.Mutex
	count int
}

func (m *memRecorder) Record(context.Context, string, error, *string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
}

func closedDay(d int, hours float64) attendance.Attendance {
	date := time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC)
	in := date.Add(2 * time.Hour)
	out := in.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Attendance{EmployeeID: "emp-1", Date: date, ClockIn: &in, ClockOut: &out, Status: attendance.StatusPresent}
}

func TestGenerate_IsIdempotentAndIsolatesFailures(t *testing.T) {
	juneLate := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)
	juneAbsent := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	julyDay := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	lateIn := juneLate.Add(3 * time.Hour)

	recaps := &memRecapRepo{rows: map[string]recap.Recap{}}
	attendances := &memAttendanceRepo{
		rows: map[string][]attendance.Attendance{
			"emp-1": {
				closedDay(3, 8),
				closedDay(4, 7.5),
				{EmployeeID: "emp-1", Date: juneLate, ClockIn: &lateIn, Status: attendance.StatusLate},
				{EmployeeID: "emp-1", Date: juneAbsent, Status: attendance.StatusAbsent},
				{EmployeeID: "emp-1", Date: julyDay, Status: attendance.StatusAbsent},
			},
		},
		failFor: "emp-2",
	}
	employees := &memEmployeeRepo{all: []employee.Employee{
		{ID: "emp-1", EmploymentStatus: employee.EmploymentStatusActive},
		{ID: "emp-2", EmploymentStatus: employee.EmploymentStatusActive},
		{ID: "emp-3", EmploymentStatus: employee.EmploymentStatusActive},
	}}
	recorder := &memRecorder{}

	svc := NewRecapService(recaps, attendances, employees, recorder)

	for run := 0; run < 2; run++ {
		resp, err := svc.Generate(context.Background(), recap.GenerateRequest{Month: 6, Year: 2024})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Processed)
		assert.Equal(t, 1, resp.Failed)

		got := recaps.rows["emp-1"]
		assert.Equal(t, 2, got.TotalDaysPresent)
		assert.Equal(t, 1, got.TotalDaysLate)
		assert.Equal(t, 1, got.TotalDaysAbsent)
		assert.InDelta(t, 15.5, got.TotalWorkHours, 0.0001)
	}

	assert.Equal(t, 0, recaps.rows["emp-3"].TotalDaysPresent)
	assert.Equal(t, 2, recorder.count)
}

func TestGenerate_IncludesResignedEmployees(t *testing.T) {
	lastDay := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	in := lastDay.Add(2 * time.Hour)

	recaps := &memRecapRepo{rows: map[string]recap.Recap{}}
	attendances := &memAttendanceRepo{rows: map[string][]attendance.Attendance{
		"emp-1": {closedDay(3, 8)},
		"emp-9": {
			{EmployeeID: "emp-9", Date: lastDay, ClockIn: &in, Status: attendance.StatusLate},
		},
	}}
	employees := &memEmployeeRepo{all: []employee.Employee{
		{ID: "emp-1", EmploymentStatus: employee.EmploymentStatusActive},
		{ID: "emp-9", EmploymentStatus: employee.EmploymentStatusResigned},
	}}

	svc := NewRecapService(recaps, attendances, employees, &memRecorder{})
	resp, err := svc.Generate(context.Background(), recap.GenerateRequest{Month: 6, Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 0, resp.Failed)

	got, ok := recaps.rows["emp-9"]
	require.True(t, ok)
	assert.Equal(t, 1, got.TotalDaysLate)
	assert.Equal(t, 6, got.Month)
	assert.Equal(t, 2024, got.Year)
}

func TestGenerate_Validation(t *testing.T) {
	svc := NewRecapService(&memRecapRepo{}, &memAttendanceRepo{}, &memEmployeeRepo{}, &memRecorder{})

	_, err := svc.Generate(context.Background(), recap.GenerateRequest{Month: 13, Year: 2024})
	assert.Error(t, err)
}

func TestList_AndExportTable(t *testing.T) {
	name := "Budi"
	recaps := &memRecapRepo{rows: map[string]recap.Recap{
		"emp-1": {EmployeeID: "emp-1", EmployeeName: &name, Month: 6, Year: 2024, TotalDaysPresent: 20, TotalWorkHours: 160.456},
	}}
	svc := NewRecapService(recaps, &memAttendanceRepo{}, &memEmployeeRepo{}, &memRecorder{})

	rows, err := svc.List(context.Background(), recap.ListFilter{Month: "6", Year: "2024"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi", rows[0].EmployeeName)
	assert.InDelta(t, 160.46, rows[0].TotalWorkHours, 0.0001)

	_, err = svc.List(context.Background(), recap.ListFilter{Month: "6", Year: "2024", Format: "pdf"})
	assert.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, recap.Table("2024-06", rows)))
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Employee ID", records[0][0])
	assert.Equal(t, []string{"emp-1", "Budi", "2024-06", "20", "0", "0", "160.46"}, records[1])
}
