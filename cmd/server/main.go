package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/app"
	"github.com/allsafeASM/lookup/internal/azure"
	"github.com/allsafeASM/lookup/internal/config"
	"github.com/allsafeASM/lookup/internal/logging"
	transport "github.com/allsafeASM/lookup/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		gologger.Fatal().Msgf("Configuration error: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		gologger.Fatal().Msgf("Configuration error: %v", err)
	}

	logging.SetupLogging(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := app.NewComponents(ctx, cfg)
	if err != nil {
		gologger.Fatal().Msgf("Failed to initialize lookup engine: %v", err)
	}
	defer components.Close()

	opts := []transport.Option{transport.WithProviderMode(cfg.Lookup.ProviderMode)}
	if components.Cache != nil {
		opts = append(opts, transport.WithHealthCheck("redis", components.Cache))
	}

	if cfg.Azure.BlobStorageConnectionString != "" {
		blobClient, err := azure.NewBlobStorageClient(cfg.Azure.BlobStorageConnectionString, cfg.Azure.BlobContainerName)
		if err != nil {
			gologger.Fatal().Msgf("Failed to create Blob Storage client: %v", err)
		}
		opts = append(opts, transport.WithResults(blobClient))
	}

	if cfg.Azure.ServiceBusConnectionString != "" {
		serviceBusClient, err := azure.NewServiceBusClient(cfg.Azure.ServiceBusConnectionString, cfg.Azure.QueueName)
		if err != nil {
			gologger.Fatal().Msgf("Failed to create Service Bus client: %v", err)
		}
		defer serviceBusClient.Close(context.Background())
		opts = append(opts, transport.WithQueue(serviceBusClient))
	}

	router := transport.NewRouter(
		transport.NewHandler(components.Engine, opts...),
		components.Registry,
		cfg.HTTP.RequestTimeout,
	)
	srv := transport.NewServer(cfg.HTTP, router)

	go func() {
		gologger.Info().Msgf("Lookup API listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			gologger.Error().Msgf("HTTP server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	gologger.Info().Msg("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		gologger.Error().Msgf("HTTP server shutdown failed: %v", err)
	}
	gologger.Info().Msg("Shutdown complete")
}
