package jobs

import (
	"context"
	"log/slog"
	"time"

	"quickbasket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TrackingPruneJob deletes tracking samples older than the retention window.
// The newest sample per order always survives the prune, so an order still in
// transit keeps its marker even when it has been quiet longer than retention.
type TrackingPruneJob struct {
	uowFactory commands.UoWFactory
	retention  time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingPruneJob creates the prune job with the given retention window
// and cron schedule (with seconds field, e.g. "0 0 * * * *" for hourly).
func NewTrackingPruneJob(
	uowFactory commands.UoWFactory,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *TrackingPruneJob {
	return &TrackingPruneJob{
		uowFactory: uowFactory,
		retention:  retention,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tracking_prune_job"),
	}
}

// Start begins the prune job.
func (j *TrackingPruneJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.prune); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking prune job started",
		"schedule", j.schedule, "retention", j.retention)
	return nil
}

// Stop stops the prune job.
func (j *TrackingPruneJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking prune job stopped")
}

func (j *TrackingPruneJob) prune() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.retention)

	removed, err := j.uowFactory.Create().TrackingRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tracking prune failed", "error", err)
		return
	}

	if removed > 0 {
		j.logger.InfoContext(ctx, "Tracking samples pruned", "removed", removed, "cutoff", cutoff)
	}
}
