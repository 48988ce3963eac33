package jobs

import (
	"context"
	"log/slog"
	"time"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob periodically cancels orders that have been
// sitting in Requested status past the configured age. Cancelling them
// releases their weight back into the customers' monthly quota.
type StaleOrderCancellationJob struct {
	handler    commands.CancelStaleOrdersCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
	cutoffDays int
}

// NewStaleOrderCancellationJob creates a job that cancels Requested orders
// older than cutoffDays. Runs once a day during the night lull.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	cutoffDays int,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "stale_order_cancellation_job"),
		cutoffDays: cutoffDays,
	}
}

// Start schedules the job to run daily at 03:00 UTC.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 3 * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Stale order cancellation job started (running daily)", "cutoff_days", j.cutoffDays)
	return nil
}

// Stop stops the stale order cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

func (j *StaleOrderCancellationJob) run() {
	ctx := context.Background()
	cutoff := time.Now().UTC().AddDate(0, 0, -j.cutoffDays)

	cmd, err := commands.NewCancelStaleOrdersCommand(cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job failed to build command", "error", err)
		return
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", err)
		return
	}

	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled, "cutoff", cutoff)
	}
}
