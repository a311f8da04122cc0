// Package jobs holds the scheduled background work of the tracking service,
// built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SummarySnapshotJob - Runs every 30 seconds to log registration and delivery totals
//
// # Usage
//
// JobManager owns the lifecycle of every job:
//
//	jobManager := jobs.NewJobManager(getSummaryReportHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The snapshot job runs on the six-field expression "*/30 * * * * *", i.e.
// every 30 seconds. It is read-only: it executes the summary report query and
// writes the totals to the structured log, touching no tracking state.
//
// # Error Handling
//
// - Snapshot failures are logged and the next run proceeds normally
// - Failed job starts abort application startup
package jobs
