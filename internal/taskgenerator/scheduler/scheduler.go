package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/trigg3rX/feeshare-avs/pkg/logging"
)

// TickFunc is one unit of scheduled work.
type TickFunc func(ctx context.Context)

// Scheduler runs a TickFunc on a fixed interval. A tick never starts while the
// previous one is still running.
type Scheduler struct {
	cron     *cron.Cron
	interval time.Duration
	tick     TickFunc
	logger   logging.Logger

	running atomic.Bool
	skipped atomic.Uint64

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func New(interval time.Duration, tick TickFunc, logger logging.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", interval)
	}
	if tick == nil {
		return nil, fmt.Errorf("tick function is nil")
	}
	cl := cronLogger{logger: logger}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		interval: interval,
		tick:     tick,
		logger:   logger,
	}, nil
}

// Start schedules the tick and runs one immediately. It returns without
// waiting; Stop ends the schedule.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return fmt.Errorf("scheduler already started")
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.run); err != nil {
		s.cancel()
		s.cancel = nil
		return fmt.Errorf("failed to schedule tick: %w", err)
	}
	s.cron.Start()
	go s.run()

	s.logger.Info("Scheduler started", "interval", s.interval)
	return nil
}

// Stop cancels the running tick and waits for it to return.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()

	done := s.cron.Stop().Done()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			if !s.running.Load() {
				s.logger.Info("Scheduler stopped", "skipped_ticks", s.skipped.Load())
				return nil
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

// Skipped returns how many ticks were dropped because one was still running.
func (s *Scheduler) Skipped() uint64 {
	return s.skipped.Load()
}

func (s *Scheduler) run() {
	if s.ctx.Err() != nil {
		return
	}
	if !s.running.CompareAndSwap(false, true) {
		s.skipped.Add(1)
		s.logger.Warn("Previous tick still running, skipping")
		return
	}
	defer s.running.Store(false)
	s.tick(s.ctx)
}

// cronLogger routes cron's own logs into the service logger.
type cronLogger struct {
	logger logging.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
