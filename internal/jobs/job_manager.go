package jobs

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	summarySnapshotJob *SummarySnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the report query handler as a dependency to wire up job execution.
func NewJobManager(
	getSummaryReportHandler queries.GetSummaryReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		summarySnapshotJob: NewSummarySnapshotJob(getSummaryReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.summarySnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start summary snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.summarySnapshotJob.Stop()
}
