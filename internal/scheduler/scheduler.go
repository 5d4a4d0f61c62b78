// Package scheduler runs the gateway's periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/wb-go/wbf/zlog"
)

// QueueDepthInterval is how often the failure queue depth is logged.
const QueueDepthInterval = time.Minute

type maintenance interface {
	CleanupCache(ctx context.Context) (int64, error)
	QueueDepth() int
}

// Scheduler wraps a gocron scheduler.
type Scheduler struct {
	s gocron.Scheduler
}

func New() (*Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
		gocron.WithLogger(newLogger()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{s: s}, nil
}

// Every registers fn to run every interval. Runs of the same job never overlap.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) error {
	_, err := s.s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(fn),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to add job %s: %w", name, err)
	}

	return nil
}

// RegisterMaintenance adds the cache cleanup and queue depth jobs.
func (s *Scheduler) RegisterMaintenance(ctx context.Context, m maintenance, cleanupInterval time.Duration) error {
	err := s.Every("cache-cleanup", cleanupInterval, func() {
		removed, err := m.CleanupCache(ctx)
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("cache cleanup failed")
			return
		}

		zlog.Logger.Debug().Int64("removed", removed).Msg("cache cleanup finished")
	})
	if err != nil {
		return err
	}

	return s.Every("queue-depth", QueueDepthInterval, func() {
		depth := m.QueueDepth()
		event := zlog.Logger.Info()
		if depth > 0 {
			event = zlog.Logger.Warn()
		}
		event.Int("depth", depth).Msg("failure queue depth")
	})
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Shutdown() error {
	if err := s.s.Shutdown(); err != nil {
		return fmt.Errorf("failed to shut down scheduler: %w", err)
	}

	return nil
}
