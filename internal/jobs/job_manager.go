package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron specs of the jobs.
type Schedules struct {
	Snapshot       string
	RiderReconcile string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotJob          *SnapshotJob
	riderAvailabilityJob *RiderAvailabilityJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	saveSnapshotHandler SnapshotSaver,
	reconcileHandler RiderReconciler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotJob:          NewSnapshotJob(saveSnapshotHandler, schedules.Snapshot, logger),
		riderAvailabilityJob: NewRiderAvailabilityJob(reconcileHandler, schedules.RiderReconcile, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.riderAvailabilityJob.Start(); err != nil {
		return fmt.Errorf("failed to start rider availability job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.riderAvailabilityJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully. The snapshot job stops last
// so its final save sees the reconciled riders.
func (jm *JobManager) StopAll() {
	jm.riderAvailabilityJob.Stop()
	jm.snapshotJob.Stop()
}
