package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"loyalty-server/internal/observability"
)

// Job represents a scheduled job
type Job interface {
	// Name returns the job name for logging and metrics
	Name() string
	// Run executes the job
	Run(ctx context.Context) error
	// Schedule returns the interval between runs
	Schedule() time.Duration
}

// Scheduler manages scheduled jobs
type Scheduler struct {
	jobs    []Job
	metrics *observability.Metrics
	logger  *observability.Logger
}

// New creates a new scheduler. metrics may be nil.
func New(metrics *observability.Metrics, logger *observability.Logger) *Scheduler {
	return &Scheduler{
		jobs:    make([]Job, 0),
		metrics: metrics,
		logger:  logger,
	}
}

// Register adds a job to the scheduler. Jobs with a non-positive interval
// are disabled.
func (s *Scheduler) Register(job Job) {
	if job.Schedule() <= 0 {
		s.logger.Warn(context.Background(), fmt.Sprintf("scheduled job %s disabled: no interval", job.Name()))
		return
	}
	s.jobs = append(s.jobs, job)
	s.logger.Info(context.Background(), fmt.Sprintf("registered scheduled job: %s (interval: %s)",
		job.Name(), job.Schedule()))
}

// Start runs every job immediately and then on its interval until ctx is
// cancelled. It returns once all job goroutines have exited.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info(ctx, fmt.Sprintf("starting scheduler with %d jobs", len(s.jobs)))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runJob(ctx, job)
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
	s.logger.Info(ctx, "scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	jobCtx := observability.WithFields(ctx, observability.Field{Key: "scheduled_job", Value: job.Name()})

	s.executeJob(jobCtx, job)

	ticker := time.NewTicker(job.Schedule())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(jobCtx, fmt.Sprintf("stopping scheduled job: %s", job.Name()))
			return
		case <-ticker.C:
			s.executeJob(jobCtx, job)
		}
	}
}

// executeJob runs a job once, recovering panics so one bad run never stops
// the schedule.
func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("job %s panicked: %v", job.Name(), r)
			}
		}()
		return job.Run(ctx)
	}()
	duration := time.Since(start)
	s.metrics.RecordJobRun(job.Name(), err)

	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("job %s failed after %v", job.Name(), duration), err)
		return
	}
	s.logger.Info(ctx, fmt.Sprintf("job %s completed in %v", job.Name(), duration))
}
