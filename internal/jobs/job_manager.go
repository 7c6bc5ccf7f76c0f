package jobs

import (
	"fmt"
	"log/slog"

	"storefront/internal/pkg/metrics"
)

// Config controls the scheduled jobs.
type Config struct {
	CartClearRetrySchedule  string
	CartClearRetryBatchSize int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	cartClearRetryJob *CartClearRetryJob
}

func NewJobManager(
	retrier CartClearRetrier,
	cfg Config,
	m *metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	schedule := cfg.CartClearRetrySchedule
	if schedule == "" {
		schedule = DefaultCartClearRetrySchedule
	}

	return &JobManager{
		cartClearRetryJob: NewCartClearRetryJob(retrier, schedule, cfg.CartClearRetryBatchSize, m, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.cartClearRetryJob.Start(); err != nil {
		return fmt.Errorf("failed to start cart clear retry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.cartClearRetryJob.Stop()
}
