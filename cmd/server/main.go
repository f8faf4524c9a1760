package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/aion/internal/adapter"
	"github.com/MKhiriev/aion/internal/config"
	"github.com/MKhiriev/aion/internal/handler"
	"github.com/MKhiriev/aion/internal/logger"
	"github.com/MKhiriev/aion/internal/server"
	"github.com/MKhiriev/aion/internal/service"
	"github.com/MKhiriev/aion/internal/store"
	"github.com/MKhiriev/aion/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("aion-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(log)
	seedDemoUser(storages, log)

	suggestionClient, err := adapter.NewOpenAIClient(cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating suggestion client")
	}

	services := service.NewServices(storages, suggestionClient, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// seedDemoUser registers the default account so a fresh in-memory deployment
// is immediately usable. Entities created through the API attach to this user.
func seedDemoUser(storages *store.Storages, log *logger.Logger) {
	user, err := storages.UserRepository.Create(context.Background(), models.InsertUser{
		Username: "demo",
		Password: "password123",
		Email:    "demo@example.com",
		FullName: "Alex Morgan",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding demo user")
		return
	}

	log.Info().Int64("id", user.ID).Str("username", user.Username).Msg("demo user seeded")
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
