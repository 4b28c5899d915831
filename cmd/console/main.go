package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-admin/internal/config"
	"github.com/MKhiriev/go-wallet-admin/internal/console"
	"github.com/MKhiriev/go-wallet-admin/internal/logger"
	"github.com/MKhiriev/go-wallet-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewConsoleLogger("wallet-admin-console")
	cfg, err := config.GetConsoleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	app, err := console.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}
