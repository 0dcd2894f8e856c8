// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the time-driven parts of the job lifecycle.
//
// # Available Jobs
//
// 1. JobExpiryJob - Runs every minute to expire Open jobs whose scheduled window has started
// 2. SessionReminderJob - Runs every minute to remind participants of upcoming sessions
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireJobsHandler, remindHandler, 30*time.Minute, logger)
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
// Both jobs use the standard five-field cron expression "* * * * *" and run
// once a minute. Expiry tolerates being late: the sweep always works from the
// current clock. Reminders track the previous run so each scheduling window
// is covered exactly once.
//
// # Error Handling
//
//   - The expiry sweep treats a job accepted mid-sweep as a skip, not an error
//   - Notification failures are counted and logged, never retried by the jobs
//   - Failed job starts will stop any already running jobs
package jobs
