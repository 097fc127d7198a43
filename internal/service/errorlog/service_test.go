package errorlog

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/ngabsen-backend-go/internal/domain/errorlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memErrorLogRepo struct {
	logs    []errorlog.ErrorLog
	failing bool
}

func (m *memErrorLogRepo) Create(ctx context.Context, l errorlog.ErrorLog) (errorlog.ErrorLog, error) {
	if m.failing {
		return errorlog.ErrorLog{}, errors.New("database unavailable")
	}
	if ctx.Err() != nil {
		return errorlog.ErrorLog{}, ctx.Err()
	}
	l.ID = fmt.Sprintf("log-%d", len(m.logs)+1)
	l.ErrorTimestamp = time.Date(2024, 6, 3, 0, 0, len(m.logs), 0, time.UTC)
	m.logs = append(m.logs, l)
	return l, nil
}

func (m *memErrorLogRepo) GetByID(_ context.Context, id string) (errorlog.ErrorLog, error) {
	for _, l := range m.logs {
		if l.ID == id {
			return l, nil
		}
	}
	return errorlog.ErrorLog{}, errorlog.ErrErrorLogNotFound
}

func (m *memErrorLogRepo) List(_ context.Context, filter errorlog.ListFilter) ([]errorlog.ErrorLog, int64, error) {
	var out []errorlog.ErrorLog
	for i := len(m.logs) - 1; i >= 0; i-- {
		if filter.ErrorType == nil || m.logs[i].ErrorType == *filter.ErrorType {
			out = append(out, m.logs[i])
		}
	}
	return out, int64(len(out)), nil
}

func TestRecord_PersistsEvenAfterCancel(t *testing.T) {
	repo := &memErrorLogRepo{}
	svc := NewErrorLogService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	userID := "user-1"
	svc.Record(ctx, "clock_in", errors.New("boom"), &userID)
	svc.Record(ctx, "clock_in", nil, nil)

	require.Len(t, repo.logs, 1)
	assert.Equal(t, "boom", repo.logs[0].ErrorMessage)
	assert.Equal(t, "clock_in", repo.logs[0].ErrorType)
}

func TestRecord_FailureIsSwallowed(t *testing.T) {
	svc := NewErrorLogService(&memErrorLogRepo{failing: true})

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), "monthly_recap", errors.New("boom"), nil)
	})
}

func TestCreateGetList(t *testing.T) {
	svc := NewErrorLogService(&memErrorLogRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, errorlog.CreateErrorLogRequest{ErrorType: "frontend"})
	assert.Error(t, err)

	first, err := svc.Create(ctx, errorlog.CreateErrorLogRequest{ErrorMessage: "first", ErrorType: "frontend"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, errorlog.CreateErrorLogRequest{ErrorMessage: "second", ErrorType: "backend"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ErrorMessage)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errorlog.ErrErrorLogNotFound)

	list, err := svc.List(ctx, errorlog.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.TotalCount)
	assert.Equal(t, 50, list.Limit)
	assert.Equal(t, "second", list.ErrorLogs[0].ErrorMessage)
}
