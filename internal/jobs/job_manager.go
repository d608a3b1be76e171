package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchJob      *DispatchJob
	trackingPruneJob *TrackingPruneJob
}

// NewJobManager creates a new job manager over the configured jobs.
func NewJobManager(dispatchJob *DispatchJob, trackingPruneJob *TrackingPruneJob) *JobManager {
	return &JobManager{
		dispatchJob:      dispatchJob,
		trackingPruneJob: trackingPruneJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch job: %w", err)
	}

	if err := jm.trackingPruneJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchJob.Stop()
		return fmt.Errorf("failed to start tracking prune job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.trackingPruneJob.Stop()
	jm.dispatchJob.Stop()
}
