package jobs

import (
	"fmt"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	hubStatsJob *HubStatsJob
}

func NewJobManager(
	hubStatsHandler queries.GetHubStatsQueryHandler,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		hubStatsJob: NewHubStatsJob(hubStatsHandler, statsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.hubStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start hub stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.hubStatsJob.Stop()
}
