// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field in the schedule.
//
// # Available Jobs
//
// CartClearRetryJob empties carts whose clear failed right after checkout. Checkout
// records a pending clear task in the same transaction as the order; the job picks up
// tasks that are still pending and retries them in batches.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(retryHandler, jobs.Config{
//		CartClearRetrySchedule:  "*/30 * * * * *",
//		CartClearRetryBatchSize: 50,
//	}, metrics, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
