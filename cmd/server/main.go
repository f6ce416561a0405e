package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/app"
	"github.com/shrimpsizemoose/klassrum/internal/handlers"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	service, err := app.NewService(*configPath)
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	server := &http.Server{
		Addr:    service.Config.Server.Port,
		Handler: handlers.NewRouter(service),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info.Printf("Starting klassrum server on %s", service.Config.Server.Port)
		logger.Debug.Printf("CORS origin: %s", service.Config.Server.CORSOrigin)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error.Fatalf("Klassrum server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info.Println("Shutting down klassrum server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), service.Config.ShutdownTimeout())
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("Graceful shutdown failed: %v", err)
	}
}
