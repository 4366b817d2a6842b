// Package main provides the main entry point for the PromptLab service
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/promptlab/promptlab/app/handlers"
	"github.com/promptlab/promptlab/app/router"
	businessflow "github.com/promptlab/promptlab/business_flow"
	"github.com/promptlab/promptlab/config"
	_ "github.com/promptlab/promptlab/docs"
	"github.com/promptlab/promptlab/logger"
	"github.com/promptlab/promptlab/repository"
)

// @title PromptLab API
// @version 1.0.0
// @description Prompt management service with collections, tags, and version history
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging)
	log.Info().
		Str("version", cfg.App.Version).
		Str("environment", cfg.App.Environment).
		Msg("Starting PromptLab")

	r := buildRouter(cfg)
	r.SetupRoutes()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := r.Start(address); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-sigChan
	log.Info().Msg("Shutting down gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := r.GetApp().ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")
	}

	log.Info().Msg("Server stopped")
}

// buildRouter wires the store, flows, and handlers into the HTTP router
func buildRouter(cfg *config.Config) router.Router {
	store := repository.NewStore()

	promptFlow := businessflow.NewPromptFlow(store)
	collectionFlow := businessflow.NewCollectionFlow(store)
	tagFlow := businessflow.NewTagFlow(store)
	versionFlow := businessflow.NewVersionFlow(store)

	return router.NewFiberRouter(
		cfg,
		handlers.NewPromptHandler(promptFlow),
		handlers.NewCollectionHandler(collectionFlow),
		handlers.NewTagHandler(tagFlow),
		handlers.NewVersionHandler(versionFlow),
	)
}
