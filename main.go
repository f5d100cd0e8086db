package main

import (
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/app"
	"github.com/allsafeASM/lookup/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		gologger.Fatal().Msgf("Configuration error: %v", err)
	}

	application, err := app.NewApplication(cfg)
	if err != nil {
		gologger.Fatal().Msgf("Failed to start worker: %v", err)
	}

	if err := application.Start(); err != nil {
		gologger.Fatal().Msgf("Worker stopped: %v", err)
	}
}
