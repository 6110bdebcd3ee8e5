package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/handler"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/server"
	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/workers"
	"github.com/MKhiriev/go-cert-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-cert-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	defer storages.Close()

	sealer, err := crypto.NewSealer(cfg.App.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating secret sealer")
	}

	geo := adapter.NewHTTPGeoLocator(cfg.Security, log)

	services, err := service.NewServices(storages, geo, sealer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.Security, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	sweeper := workers.NewSweeper(cfg.Workers.SweepInterval, services.Sweepables(), log)

	srv, err := server.NewServer(handlers, workers.NewWorkers(sweeper), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
