package main

import (
	"context"

	"claritel/claritel_go_admin_service/api"
	"claritel/claritel_go_admin_service/config"
	"claritel/claritel_go_admin_service/pkg/logger"
	"claritel/claritel_go_admin_service/pkg/scheduler"
	"claritel/claritel_go_admin_service/pkg/tracing"
	"claritel/claritel_go_admin_service/storage/postgres"
)

func main() {
	cfg := config.Load()

	loggerLevel := logger.LevelDebug

	switch cfg.Environment {
	case config.DebugMode, config.TestMode:
		loggerLevel = logger.LevelDebug
	default:
		loggerLevel = logger.LevelInfo
	}

	log := logger.NewLogger(cfg.ServiceName, loggerLevel)
	defer func() {
		_ = logger.Cleanup(log)
	}()
	log.Info("Service env", logger.Any("cfg", cfg))

	if cfg.JaegerHostPort != "" {
		closer, err := tracing.Setup(cfg)
		if err != nil {
			log.Panic("tracing.Setup", logger.Error(err))
		}
		defer closer.Close()
	}

	if err := postgres.RunMigrations(cfg); err != nil {
		log.Panic("postgres.RunMigrations", logger.Error(err))
	}

	pgStore, err := postgres.NewPostgres(context.Background(), cfg)
	if err != nil {
		log.Panic("postgres.NewPostgres", logger.Error(err))
	}
	defer pgStore.CloseDB()

	tasks := scheduler.New(log, pgStore)
	if err := tasks.RunJobs(context.Background()); err != nil {
		log.Panic("scheduler.RunJobs", logger.Error(err))
	}

	router := api.SetUpRouter(cfg, log, pgStore)

	log.Info("HTTP: Server being started...", logger.String("port", cfg.ServicePort))

	if err := router.Run(cfg.ServicePort); err != nil {
		log.Panic("router.Run", logger.Error(err))
	}
}
