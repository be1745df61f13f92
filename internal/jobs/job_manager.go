package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tokenSweepJob *TokenSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepTokenCountersCommandHandler,
	sweepSchedule string,
	tokenRetentionDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tokenSweepJob: NewTokenSweepJob(sweepHandler, sweepSchedule, tokenRetentionDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start token sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenSweepJob.Stop()
}
