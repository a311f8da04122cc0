package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SummarySnapshotJob periodically writes the summary report totals to the log.
// Runs every 30 seconds so operators can follow registrations and deliveries
// without polling the report endpoint.
type SummarySnapshotJob struct {
	handler queries.GetSummaryReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSummarySnapshotJob creates a new job for logging report snapshots.
// Uses GetSummaryReportQueryHandler to build the report on every run.
func NewSummarySnapshotJob(handler queries.GetSummaryReportQueryHandler, logger *slog.Logger) *SummarySnapshotJob {
	return &SummarySnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "summary_snapshot_job"),
	}
}

// Start begins the summary snapshot job to run every 30 seconds.
func (j *SummarySnapshotJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetSummaryReportQuery()

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Summary snapshot job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Tracking summary",
			"registered", report.TotalRegistered,
			"delivered", report.TotalDelivered,
			"average_weight", report.AverageWeight,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Summary snapshot job started (running every 30 seconds)")
	return nil
}

// Stop stops the summary snapshot job.
func (j *SummarySnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Summary snapshot job stopped")
}
