// Package jobs provides scheduled background tasks using
// github.com/robfig/cron/v3.
//
// TableReconciliationJob runs every 30 seconds and re-derives each table's
// occupancy from its open orders. Drift is logged as a warning because it
// means a transition path failed to keep the two in sync.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
