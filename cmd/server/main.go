package main

import (
	"context"
	"fmt"

	"github.com/bilhold/bilhold/internal/config"
	"github.com/bilhold/bilhold/internal/handler"
	"github.com/bilhold/bilhold/internal/logger"
	"github.com/bilhold/bilhold/internal/server"
	"github.com/bilhold/bilhold/internal/service"
	"github.com/bilhold/bilhold/internal/store"
	"github.com/bilhold/bilhold/internal/suggest"
	"github.com/bilhold/bilhold/internal/vegvesen"
	"github.com/bilhold/bilhold/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bilhold-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	repositories, db, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	registry := vegvesen.NewClient(cfg.Vegvesen, log)
	generator := suggest.NewGenerator(cfg.AI, log)

	services := service.NewServices(repositories, registry, generator, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
