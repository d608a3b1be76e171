// Package jobs provides scheduled background tasks for the fulfillment core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by order fulfillment.
//
// # Available Jobs
//
// 1. DispatchJob - Sweeps approved orders and assigns the nearest eligible
// delivery partner to each one
// 2. TrackingPruneJob - Deletes tracking samples older than the retention
// window, keeping the newest sample per order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the configured jobs
//	jobManager := jobs.NewJobManager(dispatchJob, trackingPruneJob)
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
// Both jobs take six-field cron expressions (seconds first). The dispatch
// sweep runs every few seconds so an approved order is offered to a partner
// quickly; the prune runs hourly because retention is measured in days.
//
// # Error Handling
//
//   - The dispatch sweep treats "no partner available" and "vendor location
//     unset" as expected outcomes, not errors; the order stays approved and is
//     retried on the next sweep
//   - A lost dispatch race is silent, the order was handled concurrently
//   - Prune failures are logged and retried on the next run
package jobs
