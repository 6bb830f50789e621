package scheduler

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"crashwatch/internal/monitor"
)

// Scheduler runs the monitor on a cron schedule for daemon mode.
type Scheduler struct {
	Cron   *cron.Cron
	Runner *monitor.Runner
	Log    *zap.SugaredLogger
}

// NewScheduler creates a Scheduler.
func NewScheduler(runner *monitor.Runner, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		Cron:   cron.New(cron.WithSeconds()),
		Runner: runner,
		Log:    log,
	}
}

// Register adds the monitoring task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runTask); err != nil {
		return fmt.Errorf("register monitor task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Log.Infof("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	s.Log.Infof("scheduler stopped")
}

// runTask executes one pass. In daemon mode a failed fetch is logged and the
// next scheduled run retries from scratch.
func (s *Scheduler) runTask() {
	if err := s.Runner.Run(); err != nil {
		if errors.Is(err, monitor.ErrNoMarketData) {
			s.Log.Errorf("scheduled run: %v", err)
			return
		}
		s.Log.Errorf("scheduled run failed: %v", err)
	}
}
