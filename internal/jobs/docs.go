// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the restaurant service.
//
// # Available Jobs
//
// 1. OrderTrackingJob - Periodically advances every active order one status
// step, simulating the kitchen and delivery progress a customer watches on
// the tracking page.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(updateStatusHandler, orderRepository, interval, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tracking job runs on an "@every" schedule, 15 seconds by default, so a
// freshly placed order walks through its five statuses in a bit over a
// minute.
//
// # Error Handling
//
// Expected races are tolerated: an order that was advanced or delivered
// between listing and updating simply skips the tick. Other errors are
// logged and the next tick retries.
package jobs
