package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	marketplaceStatsJob *MarketplaceStatsJob
}

func NewJobManager(
	statsSchedule string,
	statsHandler StatsHandler,
	gauges *MarketplaceGauges,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		marketplaceStatsJob: NewMarketplaceStatsJob(statsSchedule, statsHandler, gauges, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.marketplaceStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start marketplace stats job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.marketplaceStatsJob.Stop()
}
