package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-admin/internal/adapter"
	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/handler"
	"github.com/MKhiriev/go-wallet-admin/internal/handler/grpc"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/internal/metrics"
	"github.com/MKhiriev/go-wallet-admin/internal/server"
	"github.com/MKhiriev/go-wallet-admin/internal/service"
	"github.com/MKhiriev/go-wallet-admin/internal/store"
	"github.com/MKhiriev/go-wallet-admin/internal/workers"
	"github.com/MKhiriev/go-wallet-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("wallet-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	m := metrics.New()

	clientsAdapter, err := adapter.NewHTTPClientsAdapter(cfg.Adapter, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating clients adapter")
	}
	priceAdapter, err := adapter.NewHTTPPriceAdapter(cfg.Adapter, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating price adapter")
	}

	adapters := service.Adapters{ClientsAdapter: clientsAdapter, PriceAdapter: priceAdapter}
	services, err := service.NewServices(store.NewRepositories(db, log), adapters, *cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.AdminLogin != "" {
		if _, err = services.AuthService.EnsureAdmin(ctx, cfg.App.AdminLogin, cfg.App.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("error creating the configured admin")
		}
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var bgWorkers *workers.Workers
	if handlers.GRPC != nil {
		checker := workers.NewHealthChecker([]workers.CheckTarget{
			{Service: grpc.ClientsAPIService, Pinger: clientsAdapter},
			{Service: grpc.PriceAPIService, Pinger: priceAdapter},
		}, handlers.GRPC, cfg.Workers.CheckInterval, log)
		bgWorkers = workers.NewWorkers(checker)
	}

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
