package jobs

import (
	"fmt"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueShipmentsJob *OverdueShipmentsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	overdueShipmentsHandler queries.ListOverdueShipmentsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueShipmentsJob: NewOverdueShipmentsJob(overdueShipmentsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueShipmentsJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue shipments job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueShipmentsJob.Stop()
}
