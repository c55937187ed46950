package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feybrew/cauldron/internal/brewing"
	"github.com/feybrew/cauldron/internal/character"
	"github.com/feybrew/cauldron/internal/config"
	"github.com/feybrew/cauldron/internal/database"
	"github.com/feybrew/cauldron/internal/database/postgres"
	"github.com/feybrew/cauldron/internal/discord"
	"github.com/feybrew/cauldron/internal/handler"
	"github.com/feybrew/cauldron/internal/logger"
	"github.com/feybrew/cauldron/internal/recipe"
	"github.com/feybrew/cauldron/internal/server"
)

// @title Cauldron API
// @version 1.0
// @description Brewing companion service: element pairing, recipe resolution and batched crafting
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString())
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	brewRepo := postgres.NewBrewRepository(dbPool)
	recipeRepo := postgres.NewRecipeRepository(dbPool)
	characterRepo := postgres.NewCharacterRepository(dbPool)

	// Services
	recipeService := recipe.NewService(recipeRepo)
	brewingService := brewing.NewService(brewRepo, recipeService, nil)
	characterService := character.NewService(characterRepo, brewRepo)

	announcer, err := discord.NewAnnouncer(cfg.DiscordToken, cfg.DiscordChannel)
	if err != nil {
		slog.Error("Discord announcer failed", "error", err)
		os.Exit(1)
	}
	defer announcer.Close()

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, dbPool, brewingService, recipeService, characterService, announcer)

	// Run until interrupted, then drain in-flight requests
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
