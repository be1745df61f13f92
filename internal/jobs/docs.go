// Package jobs provides scheduled background tasks for the restaurant
// order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. TokenSweepJob - Runs nightly to delete pickup token counters older
// than the configured retention window. Counters reset per business day
// on their own; the sweep only reclaims rows no terminal will read again.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager, err := jobs.NewJobManager(sweepHandler, cfg, logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Sweep failures are logged and retried on the next scheduled run; a missed
// sweep only delays cleanup, it never affects token assignment.
package jobs
