package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/debug-create/new-money-pal/api"
	"github.com/debug-create/new-money-pal/internal/assistant"
	"github.com/debug-create/new-money-pal/internal/cache"
	"github.com/debug-create/new-money-pal/internal/config"
	"github.com/debug-create/new-money-pal/internal/events"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/operator"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
	"github.com/debug-create/new-money-pal/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("money-pal starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	snapshots, err := cache.NewUserCache[*service.Snapshot](envConfig.CacheTTL)
	if err != nil {
		logger.WithError(err).Fatal("cache.NewUserCache")
		return
	}
	defer snapshots.Close()

	deps := service.Dependencies{
		Storage:  dbStorage,
		Operator: delegator,
		Cache:    snapshots,
		Logger:   logger,
	}

	if envConfig.AMQPURL != "" {
		publisher, err := events.NewPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, envConfig.AMQPRoutingKey, logger)
		if err != nil {
			logger.WithError(err).Fatal("events.NewPublisher")
			return
		}
		defer publisher.Close()
		deps.Publisher = publisher
	} else {
		logger.Info("AMQP_URL not set, ledger events disabled")
	}

	if envConfig.GeminiAPIKey != "" {
		advisor, err := assistant.New(ctx, envConfig.GeminiAPIKey, envConfig.GeminiModel)
		if err != nil {
			logger.WithError(err).Fatal("assistant.New")
			return
		}
		deps.Advisor = advisor
	} else {
		logger.Info("GEMINI_API_KEY not set, assistant disabled")
	}

	httpRest := api.Rest{
		Logger:           logger,
		Port:             envConfig.Port,
		Storage:          dbStorage,
		Service:          service.NewService(deps),
		Verifier:         session.NewVerifier(envConfig.JWTSecret),
		ExportDateLayout: envConfig.ExportDateLayout,
	}
	httpRest.Serve(ctx)
}
