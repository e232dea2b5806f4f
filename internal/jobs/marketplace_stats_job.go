package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StatsHandler is satisfied by queries.GetMarketplaceStatsQueryHandler.
type StatsHandler interface {
	Handle(ctx context.Context, query queries.GetMarketplaceStatsQuery) (queries.MarketplaceStats, error)
}

// MarketplaceStatsJob periodically snapshots the marketplace counts.
type MarketplaceStatsJob struct {
	handler  StatsHandler
	gauges   *MarketplaceGauges
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMarketplaceStatsJob creates the job. schedule is a six-field cron spec,
// e.g. "0 * * * * *" for once a minute.
func NewMarketplaceStatsJob(
	schedule string,
	handler StatsHandler,
	gauges *MarketplaceGauges,
	logger *slog.Logger,
) *MarketplaceStatsJob {
	return &MarketplaceStatsJob{
		handler:  handler,
		gauges:   gauges,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "marketplace_stats_job"),
	}
}

// Run takes one snapshot.
func (j *MarketplaceStatsJob) Run(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetMarketplaceStatsQuery())
	if err != nil {
		return err
	}

	if j.gauges != nil {
		j.gauges.Set(stats)
	}

	attrs := []any{"loads_total", stats.TotalLoads(), "bookings_total", stats.TotalBookings()}
	for status, n := range stats.Loads {
		attrs = append(attrs, "loads_"+status.String(), n)
	}
	for status, n := range stats.Bookings {
		attrs = append(attrs, "bookings_"+status.String(), n)
	}
	j.logger.InfoContext(ctx, "marketplace stats", attrs...)
	return nil
}

func (j *MarketplaceStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Marketplace stats job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Marketplace stats job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running snapshot to finish.
func (j *MarketplaceStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Marketplace stats job stopped")
}
