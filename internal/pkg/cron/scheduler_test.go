package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScheduler_RunOnce(t *testing.T) {
	s := newTestScheduler()

	var first, second atomic.Int32
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		first.Add(1)
		return nil
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		second.Add(1)
		return errors.New("boom")
	})

	s.RunOnce(context.Background())
	s.RunOnce(context.Background())

	assert.Equal(t, int32(2), first.Load())
	// A failing job does not stop the others and stays registered.
	assert.Equal(t, int32(2), second.Load())
}

func TestScheduler_StartRunsJobImmediately(t *testing.T) {
	s := newTestScheduler()

	ran := make(chan struct{}, 1)
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run at startup")
	}
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	s := newTestScheduler()

	started := make(chan struct{})
	var sawCancel atomic.Bool
	s.AddJob("blocking", time.Hour, func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		sawCancel.Store(true)
		return ctx.Err()
	})

	s.Start()
	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
	require.True(t, sawCancel.Load())
}
