// Package jobs provides scheduled background tasks for the order tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order workflow.
//
// # Available Jobs
//
// 1. TripPlanningJob - Runs every second to turn TRIP_QUEUED orders into planned delivery trips
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(planQueuedTripHandler, logger)
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
// The job uses the cron expression "* * * * * *" which means it runs every
// second. Each tick plans at most one trip, so a burst of queued orders drains
// gradually without starving other transactions.
//
// # Error Handling
//
//   - An empty queue (ErrNoOrderFound) is expected and not logged
//   - Any other failure is logged and retried on the next tick
package jobs
