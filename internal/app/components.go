package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/projectdiscovery/gologger"

	"github.com/allsafeASM/lookup/internal/cache"
	"github.com/allsafeASM/lookup/internal/config"
	"github.com/allsafeASM/lookup/internal/metrics"
	"github.com/allsafeASM/lookup/internal/pipeline"
	"github.com/allsafeASM/lookup/internal/providers"
	"github.com/allsafeASM/lookup/internal/tables"
)

// Components are the lookup building blocks shared by the worker and the API server
type Components struct {
	Tables   *tables.Tables
	Metrics  *metrics.Metrics
	Cache    *cache.Client
	Engine   *pipeline.Engine
	Registry *prometheus.Registry

	factory *providers.Factory
}

// NewComponents builds tables, cache, providers and the lookup engine from cfg
func NewComponents(ctx context.Context, cfg *config.Config) (*Components, error) {
	var tableOpts []tables.Option
	if path := cfg.Lookup.DisposableDomainsFile; path != "" {
		domains, err := tables.ReadDomainList(path)
		if err != nil {
			return nil, err
		}
		tableOpts = append(tableOpts, tables.WithDisposableDomains(domains))
		gologger.Info().Msgf("Loaded %d disposable domains from %s", len(domains), path)
	}

	c := &Components{
		Tables:   tables.New(tableOpts...),
		Registry: prometheus.NewRegistry(),
	}
	c.Metrics = metrics.New(c.Registry)

	redisClient, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		gologger.Warning().Msgf("Enrichment cache unavailable, continuing without it: %v", err)
	}

	var store providers.JSONStore
	if redisClient != nil {
		c.Cache = redisClient
		store = redisClient
	}

	c.factory, err = providers.NewFactory(cfg, c.Tables, store)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize providers: %w", err)
	}

	c.Engine = pipeline.New(
		c.Tables,
		c.factory.Providers(),
		cfg.Lookup.DefaultCountryCode,
		pipeline.WithMetrics(c.Metrics),
	)

	gologger.Info().Msgf("Lookup engine ready (providers: %s, default country code: %s)", c.factory.Mode(), cfg.Lookup.DefaultCountryCode)
	return c, nil
}

// Close releases providers and the cache connection
func (c *Components) Close() {
	if c.factory != nil {
		c.factory.Close()
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			gologger.Warning().Msgf("Failed to close redis client: %v", err)
		}
	}
}
