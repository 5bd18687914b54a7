package main

import (
	"github.com/hibiken/asynq"

	"kahramana-backend/internal/config"
	"kahramana-backend/pkg/logger"
)

// Config holds the worker settings derived from the application config
type Config struct {
	RedisOpt     asynq.RedisClientOpt
	Concurrency  int
	PurgeCron    string
	PurgeEnabled bool
	HealthPort   string
}

func loadConfig(app *config.Config) *Config {
	cfg := &Config{
		RedisOpt: asynq.RedisClientOpt{
			Addr:     app.Redis.Host,
			Password: app.Redis.Password,
			DB:       app.Redis.DB,
		},
		Concurrency:  app.Worker.Concurrency,
		PurgeCron:    app.Worker.PurgeCron,
		PurgeEnabled: app.Cart.Storage == "postgres",
		HealthPort:   app.Worker.HealthPort,
	}

	logger.Info("[Config] Worker configured", map[string]interface{}{
		"redis":         cfg.RedisOpt.Addr,
		"concurrency":   cfg.Concurrency,
		"purge_enabled": cfg.PurgeEnabled,
	})

	return cfg
}
