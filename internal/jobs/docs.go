// Package jobs provides scheduled background tasks for the ordering platform.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3, and managed through
// JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(remindStaleOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleOrderJob runs every minute and reminds restaurant owners about orders
// that have sat in Placed status too long without being accepted or rejected.
package jobs
