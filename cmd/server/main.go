package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/moizlokhandwala/aitravelagent/internal/adapter"
	"github.com/moizlokhandwala/aitravelagent/internal/config"
	myHTTP "github.com/moizlokhandwala/aitravelagent/internal/handler/http"
	"github.com/moizlokhandwala/aitravelagent/internal/logger"
	"github.com/moizlokhandwala/aitravelagent/internal/planner"
	"github.com/moizlokhandwala/aitravelagent/internal/server"
	"github.com/moizlokhandwala/aitravelagent/internal/service"
	"github.com/moizlokhandwala/aitravelagent/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	log := logger.NewLogger("travel-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	// empty base URL means prompt enrichment is disabled
	var countries adapter.CountryLookup
	if cfg.Countries.BaseURL != "" {
		countries, err = adapter.NewCountriesClient(cfg.Countries, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating countries client")
		}
	}

	completer := planner.NewOpenAIProvider(cfg.OpenAI, log)

	services := service.NewServices(storages, completer, countries, cfg, log)

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
