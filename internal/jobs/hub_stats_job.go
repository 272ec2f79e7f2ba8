package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// HubStatsJob periodically logs how many orders sit in each status.
type HubStatsJob struct {
	handler  queries.GetHubStatsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewHubStatsJob(handler queries.GetHubStatsQueryHandler, schedule string, logger *slog.Logger) *HubStatsJob {
	return &HubStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "hub_stats_job"),
	}
}

// Start registers the job on its schedule. An unparsable schedule is returned as an error.
func (j *HubStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Hub stats job started", "schedule", j.schedule)
	return nil
}

// Run logs the current counters once.
func (j *HubStatsJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetHubStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Hub stats job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Hub stats",
		"total", stats.Total,
		"pending", stats.Pending,
		"reached_hub", stats.ReachedHub,
		"picked_up", stats.PickedUp,
	)
}

// Stop waits for a running invocation to finish.
func (j *HubStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Hub stats job stopped")
}
