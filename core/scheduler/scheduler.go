package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// Scheduler runs recurring background jobs such as the store sweep.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *zap.Logger
}

// New creates and starts a scheduler configured to use UTC and the given logger.
func New(logger *zap.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(&zapAdapter{logger: logger.Sugar()}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s.Start()

	return &Scheduler{scheduler: s, logger: logger}, nil
}

// Every schedules job to run at a fixed interval. Runs of the same job never
// overlap; a run that is still busy when the next tick fires is rescheduled.
func (s *Scheduler) Every(name string, interval time.Duration, job func()) error {
	if name == "" {
		return errors.New("empty job name")
	}
	if interval <= 0 {
		return fmt.Errorf("invalid interval %s for job %s", interval, name)
	}
	if job == nil {
		return errors.New("nil job function")
	}

	const slowThreshold = 5 * time.Second

	wrapped := func() {
		start := time.Now()
		job()
		if d := time.Since(start); d > slowThreshold {
			s.logger.Warn("Slow scheduled job execution",
				zap.String("job_name", name),
				zap.Duration("duration", d))
		}
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", name, err)
	}

	s.logger.Info("Job scheduled",
		zap.String("job_name", name),
		zap.Duration("interval", interval))

	return nil
}

// Stop shuts the scheduler down and waits for running jobs to finish.
func (s *Scheduler) Stop() error {
	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown scheduler: %w", err)
	}
	return nil
}

// zapAdapter bridges gocron.Logger onto zap.
type zapAdapter struct {
	logger *zap.SugaredLogger
}

func (l *zapAdapter) Debug(msg string, args ...any) { l.logger.Debugw(msg, args...) }
func (l *zapAdapter) Info(msg string, args ...any)  { l.logger.Infow(msg, args...) }
func (l *zapAdapter) Warn(msg string, args ...any)  { l.logger.Warnw(msg, args...) }
func (l *zapAdapter) Error(msg string, args ...any) { l.logger.Errorw(msg, args...) }
