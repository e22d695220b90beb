// Package scheduler runs the periodic maintenance jobs: reloading the
// published events and expiring abandoned dialogs.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"poeHub/internal/lib/logger/sl"
)

type Job func(ctx context.Context) error

type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger
	ctx  context.Context
}

func New(log *slog.Logger) *Scheduler {
	cl := cronLogger{log: log.With(slog.String("component", "scheduler"))}

	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.Recover(cl)), cron.WithLogger(cl)),
		log:  log,
		ctx:  context.Background(),
	}
}

// Add registers job under a cron spec such as "@every 5m".
func (s *Scheduler) Add(name, spec string, job Job) error {
	const op = "scheduler.Add"

	_, err := s.cron.AddFunc(spec, func() {
		s.run(name, job)
	})
	if err != nil {
		return fmt.Errorf("%s: job %s: %w", op, name, err)
	}

	return nil
}

func (s *Scheduler) run(name string, job Job) {
	log := s.log.With(slog.String("job", name))

	if err := job(s.ctx); err != nil {
		log.Error("scheduled job failed", sl.Err(err))
		return
	}

	log.Debug("scheduled job done")
}

// Start runs the jobs until ctx is done, then waits for running jobs.
func (s *Scheduler) Start(ctx context.Context) {
	s.ctx = ctx
	s.cron.Start()

	<-ctx.Done()

	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{sl.Err(err)}, keysAndValues...)...)
}
