// Package jobs provides scheduled background tasks for the freight marketplace.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// MarketplaceStatsJob counts loads and bookings per status, logs the totals and
// publishes them as Prometheus gauges (freight_loads, freight_bookings).
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cfg.StatsSchedule, statsHandler, gauges, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and leaves the gauges at their previous values; the
// next tick tries again. An invalid schedule fails StartAll.
package jobs
