package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type job struct {
	name  string
	every time.Duration
	run   func(ctx context.Context) error
}

// Scheduler drives background jobs on fixed intervals. The factory runs a
// single instance, so there is no distributed locking; jobs themselves must
// be idempotent.
type Scheduler struct {
	logger *slog.Logger
	jobs   []job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler(logger *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// AddJob registers a job. Call before Start.
func (s *Scheduler) AddJob(name string, every time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, job{name: name, every: every, run: run})
	s.logger.Info("Cron job registered", "name", name, "interval", every)
}

// Start launches one goroutine per registered job. Each job fires once
// immediately, so a restart inside the reconcile window does not miss the
// month, then ticks on its interval.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.loop(j)
	}

	s.logger.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels all job contexts and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.every)
	defer ticker.Stop()

	s.execute(s.ctx, j)

	for {
		select {
		case <-s.ctx.Done():
			s.logger.Info("Cron job stopping", "name", j.name)
			return
		case <-ticker.C:
			s.execute(s.ctx, j)
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, j job) {
	start := time.Now()

	if err := j.run(ctx); err != nil {
		s.logger.Error("Cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Debug("Cron job completed", "name", j.name, "duration", time.Since(start))
}

// RunOnce executes every registered job a single time on the caller's
// context, without starting the tickers.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, j := range s.jobs {
		s.execute(ctx, j)
	}
}
