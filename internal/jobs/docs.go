// Package jobs provides scheduled background tasks for the dispatch engine.
//
// Jobs use github.com/robfig/cron/v3 and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewDispatchSummaryJob(summaryHandler, "@every 1m", logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DispatchSummaryJob logs revenue, driver pay, completed services and queue
// sizes. Schedules are six-field cron specs with seconds or descriptors such as
// "@every 30s".
//
// # Error Handling
//
// A failed run is logged and the job keeps its schedule. A job that fails to
// start stops the jobs already running.
package jobs
