package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/leaguebot-go/internal/testutil"
)

func TestRunsTasksImmediately(t *testing.T) {
	var ran atomic.Int32
	s := New(time.Hour, testutil.NopLogger(), Task{
		Name: "sweep",
		Run: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestTaskFailureDoesNotStopLaterTasks(t *testing.T) {
	var ran atomic.Int32
	s := New(time.Hour, testutil.NopLogger(),
		Task{Name: "broken", Run: func(ctx context.Context) error { return errors.New("boom") }},
		Task{Name: "fine", Run: func(ctx context.Context) error { ran.Add(1); return nil }},
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestRunsOnEachTick(t *testing.T) {
	var ran atomic.Int32
	s := New(10*time.Millisecond, testutil.NopLogger(), Task{
		Name: "sweep",
		Run: func(ctx context.Context) error {
			ran.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return ran.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
