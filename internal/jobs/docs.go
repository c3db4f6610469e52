// Package jobs provides scheduled background reports for the packing service.
//
// Jobs are cron-driven through github.com/robfig/cron/v3 with standard
// five-field schedules and log through zerolog:
//
//   - LowStockJob warns about active carton types below their minimum stock.
//   - StalePackJob warns about packs left in progress longer than a threshold.
//
// Usage:
//
//	manager := jobs.NewJobManager(jobs.Config{
//		LowStockSchedule:  "0 7 * * *",
//		StalePackSchedule: "*/30 * * * *",
//		StalePackAfter:    8 * time.Hour,
//	}, lowStockHandler, stalePacksHandler)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Jobs only read. A failed run is logged and retried at the next tick.
package jobs
