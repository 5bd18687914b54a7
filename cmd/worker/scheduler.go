package main

import (
	"log"

	"kahramana-backend/internal/infrastructure/queue"
	"kahramana-backend/pkg/logger"
)

// asynqScheduler wraps queue.Scheduler with start/stop logging
type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *Config) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.RedisOpt, cfg.PurgeCron)

	if err := scheduler.RegisterCartJobs(cfg.PurgeEnabled); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		logger.Info("[Scheduler] Starting...", map[string]interface{}{})
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	logger.Info("[Scheduler] Shutting down...", map[string]interface{}{})
	s.Scheduler.Shutdown()
}
