package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnceSurvivesFailures(t *testing.T) {
	s := NewScheduler()
	var ran int32

	s.AddJob("fails", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return errors.New("boom")
	})
	s.AddJob("panics", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		panic("unexpected")
	})
	s.AddJob("ok", time.Hour, func(ctx context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	})

	s.RunOnce(context.Background())
	assert.Equal(t, int32(3), atomic.LoadInt32(&ran))
}

func TestScheduler_StartAndStop(t *testing.T) {
	s := NewScheduler()
	var ticks int32

	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		atomic.AddInt32(&ticks, 1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&ticks) >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()

	after := atomic.LoadInt32(&ticks)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&ticks))
}
