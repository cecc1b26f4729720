// Package refresh owns the daily data rollover. Prayer timings are valid for
// exactly one calendar day, so a coarse once-a-minute check watches for the
// local date to change and drops the stale cache entries when it does. The
// check is deliberately imprecise and tolerates multi-minute drift.
package refresh

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/santridev/muslim-companion/internal/cache"
	"github.com/santridev/muslim-companion/internal/prayer"
)

// Watcher runs the midnight check on a scheduler whose lifetime is tied to
// the server context.
type Watcher struct {
	cache     *cache.Cache
	scheduler gocron.Scheduler
	lastDate  string
	now       func() time.Time
}

// NewWatcher creates the midnight watcher.
func NewWatcher(c *cache.Cache) (*Watcher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Watcher{
		cache:     c,
		scheduler: scheduler,
		now:       time.Now,
	}, nil
}

// Start schedules the once-per-minute check and runs until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.lastDate = w.now().Format("2006-01-02")

	_, err := w.scheduler.NewJob(
		gocron.DurationJob(time.Minute),
		gocron.NewTask(func() { w.check(ctx) }),
		gocron.WithName("midnight_rollover_job"),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule rollover job: %w", err)
	}

	w.scheduler.Start()
	go func() {
		<-ctx.Done()
		if err := w.scheduler.Shutdown(); err != nil {
			log.Error().Err(err).Msg("failed to shut down rollover scheduler")
		}
	}()
	return nil
}

// check drops the previous day's prayer cache entries once the local date
// has rolled over.
func (w *Watcher) check(ctx context.Context) {
	today := w.now().Format("2006-01-02")
	if today == w.lastDate {
		return
	}

	deleted, err := w.cache.DeletePrefix(ctx, prayer.KeyPrefix)
	if err != nil {
		log.Error().Err(err).Msg("failed to invalidate prayer cache at rollover")
		return
	}

	log.Info().
		Str("from", w.lastDate).
		Str("to", today).
		Int("invalidated", deleted).
		Msg("local midnight passed, daily prayer data invalidated")
	w.lastDate = today
}
