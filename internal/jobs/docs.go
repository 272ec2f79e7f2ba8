// Package jobs provides scheduled background tasks for the parcel hub.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds-enabled parser, so both
// six-field expressions ("*/30 * * * * *") and descriptors ("@every 1m") work.
//
// # Available Jobs
//
// 1. HubStatsJob - logs the number of orders per status on a configurable schedule
//
// # Usage
//
//	jobManager := jobs.NewJobManager(hubStatsHandler, "@every 1m", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
