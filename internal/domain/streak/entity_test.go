package streak

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAdvance_FirstPresentStartsAtOne(t *testing.T) {
	s := Advance(nil, "emp-1", day(2024, 6, 3), attendance.StatusPresent)

	assert.Equal(t, "emp-1", s.EmployeeID)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, ResetReasonNone, s.ResetReason)
	require.NotNil(t, s.LastStreakDate)
	assert.Equal(t, day(2024, 6, 3), *s.LastStreakDate)
}

func TestAdvance_Sequences(t *testing.T) {
	type step struct {
		date    time.Time
		status  attendance.Status
		current int
		longest int
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "three consecutive days then late",
			steps: []step{
				{day(2024, 6, 3), attendance.StatusPresent, 1, 1},
				{day(2024, 6, 4), attendance.StatusPresent, 2, 2},
				{day(2024, 6, 5), attendance.StatusPresent, 3, 3},
				{day(2024, 6, 6), attendance.StatusLate, 0, 3},
				{day(2024, 6, 7), attendance.StatusPresent, 1, 3},
			},
		},
		{
			name: "gap day restarts at one",
			steps: []step{
				{day(2024, 6, 3), attendance.StatusPresent, 1, 1},
				{day(2024, 6, 4), attendance.StatusPresent, 2, 2},
				{day(2024, 6, 6), attendance.StatusPresent, 1, 2},
			},
		},
		{
			name: "month boundary is contiguous",
			steps: []step{
				{day(2024, 1, 30), attendance.StatusPresent, 1, 1},
				{day(2024, 1, 31), attendance.StatusPresent, 2, 2},
				{day(2024, 2, 1), attendance.StatusPresent, 3, 3},
			},
		},
		{
			name: "leap day is contiguous",
			steps: []step{
				{day(2024, 2, 28), attendance.StatusPresent, 1, 1},
				{day(2024, 2, 29), attendance.StatusPresent, 2, 2},
				{day(2024, 3, 1), attendance.StatusPresent, 3, 3},
			},
		},
		{
			name: "year boundary is contiguous",
			steps: []step{
				{day(2023, 12, 31), attendance.StatusPresent, 1, 1},
				{day(2024, 1, 1), attendance.StatusPresent, 2, 2},
			},
		},
		{
			name: "first evaluation late",
			steps: []step{
				{day(2024, 6, 3), attendance.StatusLate, 0, 0},
				{day(2024, 6, 4), attendance.StatusPresent, 1, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s *Streak
			for i, st := range tt.steps {
				next := Advance(s, "emp-1", st.date, st.status)
				assert.Equal(t, st.current, next.CurrentStreak, "step %d current", i)
				assert.Equal(t, st.longest, next.LongestStreak, "step %d longest", i)
				assert.GreaterOrEqual(t, next.LongestStreak, next.CurrentStreak, "step %d invariant", i)
				s = &next
			}
		})
	}
}

func TestAdvance_LateStampsReset(t *testing.T) {
	prev := Advance(nil, "emp-1", day(2024, 6, 3), attendance.StatusPresent)
	s := Advance(&prev, "emp-1", day(2024, 6, 4), attendance.StatusLate)

	assert.Equal(t, ResetReasonLate, s.ResetReason)
	require.NotNil(t, s.LastResetDate)
	assert.Equal(t, day(2024, 6, 4), *s.LastResetDate)
	assert.Equal(t, day(2024, 6, 4), *s.LastStreakDate)
}

func TestAdvance_DoesNotMutatePrev(t *testing.T) {
	prev := Advance(nil, "emp-1", day(2024, 6, 3), attendance.StatusPresent)
	_ = Advance(&prev, "emp-1", day(2024, 6, 4), attendance.StatusPresent)

	assert.Equal(t, 1, prev.CurrentStreak)
	assert.Equal(t, day(2024, 6, 3), *prev.LastStreakDate)
}

func TestStreak_Reset(t *testing.T) {
	last := day(2024, 6, 5)
	s := Streak{EmployeeID: "emp-1", CurrentStreak: 4, LongestStreak: 7, LastStreakDate: &last, ResetReason: ResetReasonNone}
	at := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)

	reset := s.Reset("manual", at)

	assert.Equal(t, 0, reset.CurrentStreak)
	assert.Equal(t, 7, reset.LongestStreak)
	assert.Equal(t, "manual", reset.ResetReason)
	assert.Equal(t, at, *reset.LastResetDate)
	assert.Equal(t, last, *reset.LastStreakDate)
	assert.Equal(t, 4, s.CurrentStreak)
}

func TestResetStreakRequest_Validate(t *testing.T) {
	req := ResetStreakRequest{EmployeeID: "emp-1", ResetReason: "admin"}
	assert.NoError(t, req.Validate())

	req.ResetReason = ""
	assert.ErrorContains(t, req.Validate(), "reset_reason")
}

func TestRangeFilter_Validate(t *testing.T) {
	f := RangeFilter{StartDate: "2024-06-01", EndDate: "2024-06-30"}
	require.NoError(t, f.Validate())
	assert.Equal(t, day(2024, 6, 1), f.Start)
	assert.Equal(t, day(2024, 6, 30), f.End)

	f = RangeFilter{StartDate: "2024-06-30", EndDate: "2024-06-01"}
	assert.ErrorContains(t, f.Validate(), "end_date")

	f = RangeFilter{}
	err := f.Validate()
	assert.ErrorContains(t, err, "start_date")
	assert.ErrorContains(t, err, "end_date")
}
