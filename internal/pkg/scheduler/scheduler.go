package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/smsmock/internal/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Job is a unit of periodic maintenance work
type Job func(ctx context.Context) error

// Scheduler runs maintenance jobs on cron schedules. Overlapping runs of
// the same job are skipped and panics are recovered.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
}

// New creates a scheduler whose jobs each get timeout to finish
func New(timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger{}),
			cron.WithChain(
				cron.Recover(cronLogger{}),
				cron.SkipIfStillRunning(cronLogger{}),
			),
		),
		timeout: timeout,
	}
}

// Add registers job under a cron spec such as "@every 1h" or "5 0 * * *"
func (s *Scheduler) Add(name, spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := job(ctx); err != nil {
			logger.Error("Scheduled job failed",
				logger.String("job", name),
				logger.Err(err))
			return
		}
		logger.Debug("Scheduled job completed",
			logger.String("job", name),
			logger.Duration("took", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}

// Start begins running jobs in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs or ctx, whichever is first
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
