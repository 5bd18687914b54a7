package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/shared"
	"kahramana-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	purgeCron string
}

func NewScheduler(redisOpt asynq.RedisClientOpt, purgeCron string) *Scheduler {
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		purgeCron: purgeCron,
	}
}

// RegisterCartJobs registers the periodic cart jobs. Only postgres storage
// needs the purge job: redis expires keys by TTL and memory carts are swept
// inside the API process.
func (s *Scheduler) RegisterCartJobs(purgeEnabled bool) error {
	if !purgeEnabled {
		logger.Info("Skipping PurgeExpiredCarts: only postgres cart storage needs it", map[string]interface{}{})
		return nil
	}
	return s.registerPurgeExpiredCartsJob()
}

// ================================================
// PURGE EXPIRED CART SNAPSHOTS
// ================================================
func (s *Scheduler) registerPurgeExpiredCartsJob() error {
	task := asynq.NewTask(shared.TypePurgeExpiredCarts, nil)

	_, err := s.scheduler.Register(
		s.purgeCron,
		task,
		asynq.Queue(shared.QueueLow),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeExpiredCarts job", err)
		return err
	}

	logger.Info("Registered PurgeExpiredCarts", map[string]interface{}{
		"cron": s.purgeCron,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
