// Package jobs provides scheduled background tasks for the shipping service.
//
// Jobs are cron based (github.com/robfig/cron/v3, six fields with seconds).
//
// # Available Jobs
//
//  1. SnapshotJob - writes the in-memory state to the snapshot file when
//     something was committed since the last write, and once more on Stop
//  2. ReportJob - logs the shipping report summary
//
// # Usage
//
//	jobManager := jobs.NewJobManager(logger,
//		jobs.NewSnapshotJob(store, "swiftgo-state.json", "*/30 * * * * *", logger),
//		jobs.NewReportJob(reportHandler, "0 0 * * * *", logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failing run is logged and retried on the next tick. A job that cannot be
// scheduled stops the jobs started before it.
package jobs
