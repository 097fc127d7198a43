package streak

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/streak"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/lock"
	"github.com/cmlabs-hris/ngabsen-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStreakRepo struct {
	mu   sync.Mutex
	rows map[string]streak.Streak
}

func newMemStreakRepo() *memStreakRepo {
	return &memStreakRepo{rows: map[string]streak.Streak{}}
}

func (m *memStreakRepo) GetByEmployeeID(_ context.Context, employeeID string) (streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[employeeID]
	if !ok {
		return streak.Streak{}, streak.ErrStreakNotFound
	}
	return s, nil
}

func (m *memStreakRepo) GetForUpdate(_ context.Context, employeeID string) (*streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.rows[employeeID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (m *memStreakRepo) Upsert(_ context.Context, s streak.Streak) (streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = "streak-" + s.EmployeeID
	}
	m.rows[s.EmployeeID] = s
	return s, nil
}

func (m *memStreakRepo) List(_ context.Context) ([]streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []streak.Streak
	for _, s := range m.rows {
		out = append(out, s)
	}
	return out, nil
}

func (m *memStreakRepo) ListByRange(_ context.Context, employeeID *string, start, end time.Time) ([]streak.Streak, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []streak.Streak
	for _, s := range m.rows {
		if employeeID != nil && s.EmployeeID != *employeeID {
			continue
		}
		if s.LastStreakDate != nil && !s.LastStreakDate.Before(start) && !s.LastStreakDate.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type memEmployeeRepo struct {
	employee.EmployeeRepository
}

func (memEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	if userID != "user-1" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: "emp-1", UserID: "user-1"}, nil
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService() (*StreakServiceImpl, *memStreakRepo) {
	repo := newMemStreakRepo()
	svc := NewStreakService(repo, memEmployeeRepo{}, passthroughTx{}, lock.NewKeyedMutex()).(*StreakServiceImpl)
	return svc, repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOnAttendanceEvaluated(t *testing.T) {
	tests := []struct {
		name            string
		events          []time.Time
		statuses        []attendance.Status
		expectedCurrent int
		expectedLongest int
		expectedReason  string
	}{
		{
			name:            "three consecutive on-time days",
			events:          []time.Time{day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 5)},
			statuses:        []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusPresent},
			expectedCurrent: 3,
			expectedLongest: 3,
			expectedReason:  streak.ResetReasonNone,
		},
		{
			name:            "gap day restarts at one",
			events:          []time.Time{day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 6)},
			statuses:        []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusPresent},
			expectedCurrent: 1,
			expectedLongest: 2,
			expectedReason:  streak.ResetReasonNone,
		},
		{
			name:            "late resets current and keeps longest",
			events:          []time.Time{day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 5)},
			statuses:        []attendance.Status{attendance.StatusPresent, attendance.StatusPresent, attendance.StatusLate},
			expectedCurrent: 0,
			expectedLongest: 2,
			expectedReason:  streak.ResetReasonLate,
		},
		{
			name:            "month boundary is contiguous",
			events:          []time.Time{day(2024, 1, 31), day(2024, 2, 1)},
			statuses:        []attendance.Status{attendance.StatusPresent, attendance.StatusPresent},
			expectedCurrent: 2,
			expectedLongest: 2,
			expectedReason:  streak.ResetReasonNone,
		},
		{
			name:            "year boundary is contiguous",
			events:          []time.Time{day(2023, 12, 31), day(2024, 1, 1)},
			statuses:        []attendance.Status{attendance.StatusPresent, attendance.StatusPresent},
			expectedCurrent: 2,
			expectedLongest: 2,
			expectedReason:  streak.ResetReasonNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			ctx := context.Background()

			for i, date := range tt.events {
				s, err := svc.OnAttendanceEvaluated(ctx, "emp-1", date, tt.statuses[i])
				require.NoError(t, err)
				assert.GreaterOrEqual(t, s.LongestStreak, s.CurrentStreak)
			}

			stored := repo.rows["emp-1"]
			assert.Equal(t, tt.expectedCurrent, stored.CurrentStreak)
			assert.Equal(t, tt.expectedLongest, stored.LongestStreak)
			assert.Equal(t, tt.expectedReason, stored.ResetReason)
		})
	}
}

func TestReset(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	resetAt := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return resetAt }

	_, err := svc.Reset(ctx, streak.ResetStreakRequest{EmployeeID: "emp-1", ResetReason: "manual"})
	assert.ErrorIs(t, err, streak.ErrStreakNotFound)

	for _, d := range []time.Time{day(2024, 6, 3), day(2024, 6, 4), day(2024, 6, 5)} {
		_, err := svc.OnAttendanceEvaluated(ctx, "emp-1", d, attendance.StatusPresent)
		require.NoError(t, err)
	}

	resp, err := svc.Reset(ctx, streak.ResetStreakRequest{EmployeeID: "emp-1", ResetReason: "policy violation"})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.CurrentStreak)
	assert.Equal(t, 3, resp.LongestStreak)
	assert.Equal(t, "policy violation", resp.ResetReason)

	stored := repo.rows["emp-1"]
	require.NotNil(t, stored.LastResetDate)
	assert.True(t, stored.LastResetDate.Equal(resetAt))
	require.NotNil(t, stored.LastStreakDate)
	assert.True(t, stored.LastStreakDate.Equal(day(2024, 6, 5)))
}

func TestReset_Validation(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Reset(context.Background(), streak.ResetStreakRequest{EmployeeID: "emp-1"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "reset_reason")
}

func TestGetMineAndRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.GetMine(ctx, "user-1")
	assert.ErrorIs(t, err, streak.ErrStreakNotFound)

	_, err = svc.OnAttendanceEvaluated(ctx, "emp-1", day(2024, 6, 3), attendance.StatusPresent)
	require.NoError(t, err)

	mine, err := svc.GetMine(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, mine.CurrentStreak)

	_, err = svc.GetMine(ctx, "user-2")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	inRange, err := svc.ListByRange(ctx, streak.RangeFilter{StartDate: "2024-06-01", EndDate: "2024-06-30"})
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	outside, err := svc.ListByRange(ctx, streak.RangeFilter{StartDate: "2024-07-01", EndDate: "2024-07-31"})
	require.NoError(t, err)
	assert.Empty(t, outside)

	_, err = svc.ListByRange(ctx, streak.RangeFilter{StartDate: "2024-07-31", EndDate: "2024-07-01"})
	assert.Error(t, err)
}
