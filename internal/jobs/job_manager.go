package jobs

import (
	"fmt"
	"time"
)

// Config holds the cron schedules. An empty schedule disables its job.
type Config struct {
	LowStockSchedule  string
	StalePackSchedule string
	StalePackAfter    time.Duration
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []job
	started []job
}

func NewJobManager(cfg Config, lowStock LowStockCartonsHandler, stalePacks StalePacksHandler) *JobManager {
	jm := &JobManager{}
	if cfg.LowStockSchedule != "" {
		jm.jobs = append(jm.jobs, NewLowStockJob(lowStock, cfg.LowStockSchedule))
	}
	if cfg.StalePackSchedule != "" {
		jm.jobs = append(jm.jobs, NewStalePackJob(stalePacks, cfg.StalePackSchedule, cfg.StalePackAfter))
	}
	return jm
}

// StartAll starts every configured job. If one fails to start, the jobs
// already running are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job: %w", err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the running jobs and waits for in-flight runs.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}
