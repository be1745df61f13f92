package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TokenSweepJob deletes pickup token counters that have aged past the
// retention window. Runs on a cron schedule, nightly by default.
type TokenSweepJob struct {
	handler       commands.SweepTokenCountersCommandHandler
	schedule      string
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewTokenSweepJob creates the sweep job. schedule is a standard five-field
// cron expression; retentionDays bounds how long spent counters are kept.
func NewTokenSweepJob(handler commands.SweepTokenCountersCommandHandler,
	schedule string, retentionDays int, logger *slog.Logger) *TokenSweepJob {
	return &TokenSweepJob{
		handler:       handler,
		schedule:      schedule,
		retentionDays: retentionDays,
		cron:          cron.New(),
		logger:        logger.With("component", "token_sweep_job"),
	}
}

// Start schedules the sweep. The schedule and retention are validated here
// so a bad configuration fails at startup instead of on the first run.
func (j *TokenSweepJob) Start() error {
	cmd, err := commands.NewSweepTokenCountersCommand(j.retentionDays)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		deleted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Token sweep failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Token sweep completed", "deleted", deleted)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token sweep job started",
		"schedule", j.schedule, "retention_days", j.retentionDays)
	return nil
}

// Stop stops the sweep job.
func (j *TokenSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token sweep job stopped")
}
