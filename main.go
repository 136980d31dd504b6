package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-projector/api"
	"github.com/carson-networks/budget-projector/internal/config"
	"github.com/carson-networks/budget-projector/internal/logging"
	"github.com/carson-networks/budget-projector/internal/operator"
	"github.com/carson-networks/budget-projector/internal/service"
	"github.com/carson-networks/budget-projector/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger, err := logging.SetupLoggingWithLevel(envConfig.LogLevel)
	if err != nil {
		logrus.WithError(err).Fatal("logging.SetupLoggingWithLevel")
		return
	}
	logger.Info("budget-projector starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(ctx, envConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage.Transactions, delegator, envConfig.Polarity)

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.HTTPPort,
		Service:  svc,
		Database: dbStorage,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
	logger.Info("budget-projector stopped")
}
