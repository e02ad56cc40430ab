package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"pindrop/internal/core/application/usecases/commands"
)

// StaleOrderJob periodically reminds restaurant owners about orders stuck in
// Placed status. Runs once a minute.
type StaleOrderJob struct {
	handler   commands.RemindStaleOrdersCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleOrderJob creates the stale order reminder job. Orders count as
// stale once they have waited longer than olderThan.
func NewStaleOrderJob(
	handler commands.RemindStaleOrdersCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale order job to run every minute.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRemindStaleOrdersCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order command construction failed", "error", cmdErr)
			return
		}

		reminded, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", handleErr)
			return
		}
		if reminded > 0 {
			j.logger.InfoContext(ctx, "Reminded owners about stale orders", "count", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running every minute)")
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
