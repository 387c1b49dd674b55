package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval between sweep passes. The cadence is a deployment
// parameter, not part of the reconciler's contract.
const DefaultInterval = 24 * time.Hour

// Task is one named periodic job
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Scheduler drives periodic tasks on a single shared timer. Tasks run
// sequentially in registration order; a task failure is logged and never
// stops the loop.
type Scheduler struct {
	interval time.Duration
	tasks    []Task
	logger   *slog.Logger
}

// New creates a scheduler running the given tasks at the given interval
func New(interval time.Duration, logger *slog.Logger, tasks ...Task) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		interval: interval,
		tasks:    tasks,
		logger:   logger,
	}
}

// Run executes all tasks immediately, then on every tick, until the
// context is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, task := range s.tasks {
		start := time.Now()
		if err := task.Run(ctx); err != nil {
			s.logger.Error("scheduled task failed",
				slog.String("task", task.Name),
				slog.String("error", err.Error()))
			continue
		}
		s.logger.Info("scheduled task completed",
			slog.String("task", task.Name),
			slog.Duration("elapsed", time.Since(start)))
	}
}
