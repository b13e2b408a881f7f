package main

import (
	"fmt"

	"github.com/veilpost/veilpost-go/internal/config"
	httphandler "github.com/veilpost/veilpost-go/internal/handler/http"
	"github.com/veilpost/veilpost-go/internal/logger"
	"github.com/veilpost/veilpost-go/internal/server"
	"github.com/veilpost/veilpost-go/internal/service"
	"github.com/veilpost/veilpost-go/internal/store"
	"github.com/veilpost/veilpost-go/models"
)

// Set at build time via -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("veilpost-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewMemoryStorages(log)

	services, err := service.NewServices(storages, cfg, models.NewBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	router := httphandler.NewHandler(services, log).Init()

	srv, err := server.NewServer(router, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
