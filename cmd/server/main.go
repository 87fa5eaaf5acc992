package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-backup-vault/internal/config"
	"github.com/MKhiriev/go-backup-vault/internal/handler"
	"github.com/MKhiriev/go-backup-vault/internal/logger"
	"github.com/MKhiriev/go-backup-vault/internal/metrics"
	"github.com/MKhiriev/go-backup-vault/internal/server"
	"github.com/MKhiriev/go-backup-vault/internal/service"
	"github.com/MKhiriev/go-backup-vault/internal/store"
	"github.com/MKhiriev/go-backup-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-backup-vault")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("invalid log level")
	}

	if buildInfo.Linked() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("metrics_address", cfg.Server.MetricsAddress).
		Str("data_dir", cfg.Storage.Files.DataDir).
		Bool("mirror", cfg.Storage.Mirror.S3.Enabled()).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, metrics.New(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
