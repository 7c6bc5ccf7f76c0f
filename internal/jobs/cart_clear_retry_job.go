package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultCartClearRetrySchedule runs the retry every 30 seconds.
const DefaultCartClearRetrySchedule = "*/30 * * * * *"

// CartClearRetrier drains pending cart clears.
type CartClearRetrier interface {
	Handle(ctx context.Context, cmd commands.RetryCartClearsCommand) (commands.RetryCartClearsResult, error)
}

// CartClearRetryJob periodically retries cart clears that failed right after checkout.
// A pass that is still running when the next one is due causes that one to be skipped.
type CartClearRetryJob struct {
	handler   CartClearRetrier
	schedule  string
	batchSize int
	metrics   *metrics.Metrics
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewCartClearRetryJob creates the job. schedule is a cron expression with a seconds field.
func NewCartClearRetryJob(
	handler CartClearRetrier,
	schedule string,
	batchSize int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CartClearRetryJob {
	logger = logger.With("component", "cart_clear_retry_job")
	scheduler := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
	)

	return &CartClearRetryJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		metrics:   m,
		cron:      scheduler,
		logger:    logger,
	}
}

// Start schedules the job. It fails on an invalid schedule or batch size.
func (j *CartClearRetryJob) Start() error {
	cmd, err := commands.NewRetryCartClearsCommand(j.batchSize)
	if err != nil {
		return err
	}

	if _, err = j.cron.AddFunc(j.schedule, func() {
		j.run(context.Background(), cmd)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart clear retry job started",
		"schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

func (j *CartClearRetryJob) run(ctx context.Context, cmd commands.RetryCartClearsCommand) {
	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart clear retry job failed", "error", err)
		return
	}

	j.metrics.ObserveCartClears(result.Cleared, result.Failed, result.Parked)
	if result.Attempted > 0 {
		j.logger.InfoContext(ctx, "Retried pending cart clears",
			"attempted", result.Attempted,
			"cleared", result.Cleared,
			"failed", result.Failed,
			"parked", result.Parked)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *CartClearRetryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart clear retry job stopped")
}

// cronLogger routes robfig/cron messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
