// Package jobs provides scheduled background tasks for the dispatch service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. SnapshotJob - exports orders, riders and batches to the snapshot store
// (SNAPSHOT_SCHEDULE, default "@every 30s") and once more when stopped
// 2. RiderAvailabilityJob - switches available riders that own a pending or
// in-progress batch to busy (RIDER_RECONCILE_SCHEDULE, default "@every 10s")
//
// # Usage
//
//	jobManager := jobs.NewJobManager(saveSnapshotHandler, reconcileHandler, jobs.Schedules{
//		Snapshot:       "@every 30s",
//		RiderReconcile: "@every 10s",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job failures are logged and the job keeps its schedule. A job that fails
// to start stops the jobs already started.
package jobs
