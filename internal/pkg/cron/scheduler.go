package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is one run of a scheduled job.
type JobFunc func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       JobFunc
}

// Scheduler runs registered jobs on fixed intervals until its context ends.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	wg      sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// AddJob registers fn to run every interval. Jobs with a non-positive interval
// are skipped, and nothing can be added once the scheduler has started.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval <= 0 {
		slog.Info("cron job disabled", "name", name)
		return
	}
	if s.started {
		slog.Warn("cron job registered after start, ignoring", "name", name)
		return
	}

	s.jobs = append(s.jobs, job{name: name, interval: interval, fn: fn})
	slog.Info("cron job registered", "name", name, "interval", interval)
}

// Start launches every job in its own goroutine. Each job runs once right away
// and then on its ticker until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, j := range s.jobs {
		s.wg.Add(1)
		go s.run(ctx, j)
	}
	slog.Info("cron scheduler started", "job_count", len(s.jobs))
}

// Wait blocks until every job goroutine has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// RunOnce runs every registered job a single time, in registration order.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := append([]job(nil), s.jobs...)
	s.mu.Unlock()

	for _, j := range jobs {
		execute(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	execute(ctx, j)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("cron job stopping", "name", j.name)
			return
		case <-ticker.C:
			execute(ctx, j)
		}
	}
}

func execute(ctx context.Context, j job) {
	start := time.Now()
	if err := j.fn(ctx); err != nil {
		slog.Error("cron job failed", "name", j.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("cron job completed", "name", j.name, "duration", time.Since(start))
}
