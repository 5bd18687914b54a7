package main

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"kahramana-backend/internal/shared"
	"kahramana-backend/pkg/logger"
)

// asynqServer wraps asynq.Server with start/stop logging
type asynqServer struct {
	*asynq.Server
}

func setupAsynqServer(cfg *Config, handlers *HandlerRegistry) *asynqServer {
	mux := asynq.NewServeMux()
	handlers.RegisterHandlers(mux)

	srv := asynq.NewServer(
		cfg.RedisOpt,
		asynq.Config{
			Queues:      shared.QueuePriorities,
			Concurrency: cfg.Concurrency,
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Warn("[Asynq] Task failed", map[string]interface{}{
					"type":  task.Type(),
					"error": err.Error(),
				})
			}),
		},
	)

	go func() {
		logger.Info("[Worker] Starting...", map[string]interface{}{})
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[Worker] Failed: %v", err)
		}
	}()

	return &asynqServer{Server: srv}
}

// Shutdown waits for in-flight tasks; asynq applies its own ShutdownTimeout
func (s *asynqServer) Shutdown() {
	logger.Info("[Worker] Shutting down...", map[string]interface{}{})
	s.Server.Shutdown()
	logger.Info("[Worker] Stopped", map[string]interface{}{})
}
