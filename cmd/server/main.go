package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"phoenix-assistant/backend/internal/store"
	"phoenix-assistant/backend/pkg/config"
	"phoenix-assistant/backend/pkg/logger"
	"phoenix-assistant/backend/pkg/router"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found")
	}

	cfg := config.New()

	// Initialize structured logger
	logConfig := logger.DefaultConfig()
	logConfig.Level = cfg.Logging.Level
	logConfig.JSON = cfg.Logging.Format != "text"

	log := logger.New(logConfig)
	logger.SetGlobal(log)

	log.Info("Starting application", "env", cfg.Server.Env)

	// Connect the document store. A missing or unreachable store is not
	// fatal: the server boots and /test reports the degraded state.
	gateway, err := store.NewMongo(context.Background(), cfg.Store.URL, cfg.Store.Name, cfg.Store.Timeout)
	if err != nil {
		log.Warn("store not connected, continuing degraded", "error", err.Error())
	} else if gateway.Connected() {
		log.Info("store connected", "database", cfg.Store.Name)
	} else {
		log.Warn("DATABASE_URL not set, continuing without a store")
	}

	// Initialize and setup router
	r := router.New(gateway, log)
	r.SetupRoutes()

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r.Engine,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// Start the server in a goroutine
	go func() {
		log.Info("Server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.LogError(err, "Server failed to start")
			os.Exit(1)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal
	<-quit
	log.Info("Shutting down server...")

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		log.LogError(err, "Server forced to shutdown")
	}

	if err := gateway.Close(ctx); err != nil {
		log.LogError(err, "Store disconnect failed")
	}

	log.Info("Server exited gracefully")
}
