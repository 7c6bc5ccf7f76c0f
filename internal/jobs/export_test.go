package jobs

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
)

// RunOnce performs a single retry pass outside the schedule.
func RunOnce(ctx context.Context, j *CartClearRetryJob) error {
	cmd, err := commands.NewRetryCartClearsCommand(j.batchSize)
	if err != nil {
		return err
	}
	j.run(ctx, cmd)
	return nil
}

// ScheduledRun returns the job as cron invokes it, wrappers included.
// The job must have been started.
func ScheduledRun(j *CartClearRetryJob) func() {
	return j.cron.Entries()[0].WrappedJob.Run
}
