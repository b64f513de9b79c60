package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stockgame-service/stockgame_service/internal/api/routes"
	"github.com/stockgame-service/stockgame_service/internal/domain/services/dataset"
	"github.com/stockgame-service/stockgame_service/internal/infrastructure/config"
	"github.com/stockgame-service/stockgame_service/internal/infrastructure/csvstore"
	"github.com/stockgame-service/stockgame_service/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.Environment)

	// Initialize the CSV store and the memoizing dataset service
	store := csvstore.NewStore(cfg.Game.DataDir, cfg.Game.GameID, log)
	ds := dataset.New(store, log, cfg.Game.StartingCapital)

	// Fail fast on a broken export: the roster must load at startup
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer warmCancel()
	if err := ds.Warm(warmCtx); err != nil {
		log.Fatal("Failed to load game roster", "error", err, "data_dir", cfg.Game.DataDir, "game_id", cfg.Game.GameID)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, log, ds)

	// Create server
	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Server.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", "error", err)
	}

	log.Info("Server exited")
}
