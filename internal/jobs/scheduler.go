package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yungbote/glowstack-backend/internal/platform/logger"
)

// Job is one scheduled unit of work. The context carries the per-run timeout.
type Job func(ctx context.Context) error

// Scheduler runs the recurring scoring passes on cron schedules.
type Scheduler struct {
	log     *logger.Logger
	cron    *cron.Cron
	jobs    map[string]cron.EntryID
	timeout time.Duration
}

func NewScheduler(baseLog *logger.Logger, runTimeout time.Duration) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = 30 * time.Minute
	}
	return &Scheduler{
		log:     baseLog.With("service", "Scheduler"),
		cron:    cron.New(),
		jobs:    make(map[string]cron.EntryID),
		timeout: runTimeout,
	}
}

// Add registers a job under a standard 5-field cron spec.
func (s *Scheduler) Add(name, spec string, job Job) error {
	entryID, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		s.log.Info("job starting", "job", name)
		if err := job(ctx); err != nil {
			s.log.Error("job failed", "job", name, "error", err, "elapsed", time.Since(start).String())
			return
		}
		s.log.Info("job finished", "job", name, "elapsed", time.Since(start).String())
	})
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", name, err)
	}
	s.jobs[name] = entryID
	s.log.Info("job registered", "job", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", "jobs", len(s.jobs))
}

// Stop halts scheduling and returns a context that is done once in-flight
// runs complete.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}
