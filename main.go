package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/api"
	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	// A local .env is optional; the environment wins when both are set.
	_ = godotenv.Load()

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("ledger-server starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	svc := service.NewRecordService(store, service.SystemClock{}, service.UUIDGenerator{})

	// One worker: at most one mutation in flight, reads see every prior write.
	delegator := operator.NewOperatorDelegator(svc, 1)
	delegator.Start()
	defer delegator.Stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  svc,
		Operator: delegator,
	}
	httpRest.Serve()
}
